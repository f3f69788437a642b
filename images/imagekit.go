package images

import (
	"context"
	"os"

	"github.com/imagekit-developer/imagekit-go"
	"github.com/imagekit-developer/imagekit-go/api/uploader"
	"golang.org/x/sync/errgroup"
)

// ImageKitUploader is the remote asset host tier. It is only constructed
// when all three credentials are present; otherwise the chain starts at
// local disk.
type ImageKitUploader struct {
	client *imagekit.ImageKit
	folder string
}

// NewImageKitUploaderFromEnv returns nil when the credentials are not
// configured, silently disabling this tier.
func NewImageKitUploaderFromEnv() *ImageKitUploader {
	publicKey := os.Getenv("IMAGEKIT_PUBLIC_KEY")
	privateKey := os.Getenv("IMAGEKIT_PRIVATE_KEY")
	endpoint := os.Getenv("IMAGEKIT_URL_ENDPOINT")
	if publicKey == "" || privateKey == "" || endpoint == "" {
		return nil
	}
	client := imagekit.NewFromParams(imagekit.NewParams{
		PublicKey:   publicKey,
		PrivateKey:  privateKey,
		UrlEndpoint: endpoint,
	})
	return &ImageKitUploader{client: client, folder: "Property"}
}

// Upload pushes the whole batch concurrently and joins before returning.
// A single failed upload fails the batch so the chain degrades to the next
// tier as one unit rather than partially succeeding.
func (u *ImageKitUploader) Upload(ctx context.Context, files []UploadedFile) ([]string, error) {
	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			file, err := os.Open(f.Path)
			if err != nil {
				return err
			}
			defer file.Close()

			resp, err := u.client.Uploader.Upload(gctx, file, uploader.UploadParam{
				FileName: f.Name,
				Folder:   &u.folder,
			})
			if err != nil {
				return err
			}
			urls[i] = resp.Data.Url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

var _ Uploader = (*ImageKitUploader)(nil)
