package email

import "html/template"

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;padding:24px;">
  <h2 style="color:#1d4ed8;">BuildEstate'e Hoş Geldiniz</h2>
  <p>Merhaba {{.Name}},</p>
  <p>Hesabınız başarıyla oluşturuldu. Artık ilanları inceleyebilir,
  favorilerinize ekleyebilir ve görüntüleme randevusu alabilirsiniz.</p>
  <p style="margin-top:24px;">Sevgiler,<br>BuildEstate Ekibi</p>
</div>`))

var passwordResetTemplate = template.Must(template.New("reset").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;padding:24px;">
  <h2 style="color:#1d4ed8;">Şifre Sıfırlama</h2>
  <p>Şifrenizi sıfırlamak için aşağıdaki bağlantıya tıklayın. Bağlantı
  10 dakika boyunca geçerlidir.</p>
  <p><a href="{{.ResetURL}}" style="display:inline-block;padding:12px 24px;background:#1d4ed8;color:#fff;text-decoration:none;border-radius:6px;">Şifremi Sıfırla</a></p>
  <p>Bu isteği siz yapmadıysanız bu e-postayı yok sayabilirsiniz.</p>
</div>`))

var appointmentTemplate = template.Must(template.New("appointment").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;padding:24px;">
  <h2 style="color:#1d4ed8;">Randevu Durumu</h2>
  <p><strong>{{.Title}}</strong> ilanı için {{.Date}} {{.Time}} tarihli
  görüntüleme randevunuz <strong>{{.StatusText}}</strong>.</p>
  {{if .MeetingLink}}
  <p>Görüşme bağlantısı:
  <a href="{{.MeetingLink}}">{{.MeetingLink}}</a></p>
  {{end}}
  <p style="margin-top:24px;">Sevgiler,<br>BuildEstate Ekibi</p>
</div>`))
