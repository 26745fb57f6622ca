package email

import (
	"fmt"
	"html"

	"github.com/rajuvisuals/payments-backend/internal/purchases"
)

const brandColor = "#9B5CFF"

// All template inputs pass through html.EscapeString; form fields and
// payment notes are attacker controlled.

func userConfirmationHTML(name string) string {
	safeName := html.EscapeString(name)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; background-color: #f4f4f4;">
  <div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 12px rgba(0,0,0,0.1);">
    <div style="background: linear-gradient(135deg, %[1]s 0%%, #7C3FCC 100%%); padding: 40px 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 26px;">Thanks for reaching out, %[2]s!</h1>
    </div>
    <div style="padding: 35px 30px;">
      <p style="color: #333333; font-size: 16px; line-height: 1.6;">
        Your message has been successfully received! I appreciate you taking the time to connect with me.
      </p>
      <p style="color: #333333; font-size: 16px; line-height: 1.6;">
        I'll review your inquiry and get back to you within <strong>24-48 hours</strong>.
        If your project is time-sensitive, feel free to mention that in your message.
      </p>
      <div style="text-align: center; margin-top: 30px;">
        <a href="https://rajuvisuals.com" style="display: inline-block; background: linear-gradient(135deg, %[1]s 0%%, #7C3FCC 100%%); color: #ffffff; text-decoration: none; padding: 14px 32px; border-radius: 8px; font-weight: 600; font-size: 15px;">
          View My Portfolio
        </a>
      </div>
    </div>
    <div style="background-color: #f9f9f9; padding: 30px; border-top: 1px solid #e8e8e8; text-align: center;">
      <p style="color: #888888; font-size: 13px; margin: 0;">Raju Visuals · Video Editor &amp; Motion Graphics Artist</p>
    </div>
  </div>
</body>
</html>`, brandColor, safeName)
}

func adminNotificationHTML(form ContactForm) string {
	safeName := html.EscapeString(form.FromName)
	safeEmail := html.EscapeString(form.FromEmail)
	safeSubject := html.EscapeString(form.Subject)
	safeMessage := html.EscapeString(form.Message)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; background-color: #f4f4f4;">
  <div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 650px; margin: 40px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 12px rgba(0,0,0,0.1);">
    <div style="background: linear-gradient(135deg, %[1]s 0%%, #7C3FCC 100%%); padding: 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 24px;">New Contact Form Submission</h1>
      <p style="color: rgba(255,255,255,0.85); margin: 8px 0 0; font-size: 14px;">Received from rajuvisuals.com</p>
    </div>
    <div style="padding: 30px;">
      <table style="width: 100%%; border-collapse: collapse;">
        <tr>
          <td style="padding: 8px 0; color: #888888; font-size: 14px; width: 90px;">From</td>
          <td style="padding: 8px 0; color: #333333; font-size: 16px; font-weight: 500;">%[2]s</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; color: #888888; font-size: 14px;">Email</td>
          <td style="padding: 8px 0;"><a href="mailto:%[3]s" style="color: %[1]s; font-size: 16px; text-decoration: none; font-weight: 500;">%[3]s</a></td>
        </tr>
        <tr>
          <td style="padding: 8px 0; color: #888888; font-size: 14px;">Subject</td>
          <td style="padding: 8px 0; color: #333333; font-size: 16px; font-weight: 500;">%[4]s</td>
        </tr>
      </table>
      <div style="background-color: #ffffff; border: 2px solid #e8e8e8; border-radius: 10px; padding: 25px; margin-top: 25px;">
        <p style="color: #333333; font-size: 15px; line-height: 1.7; margin: 0; white-space: pre-wrap;">%[5]s</p>
      </div>
      <div style="text-align: center; margin-top: 30px;">
        <a href="mailto:%[3]s" style="display: inline-block; background: linear-gradient(135deg, %[1]s 0%%, #7C3FCC 100%%); color: #ffffff; text-decoration: none; padding: 14px 32px; border-radius: 8px; font-weight: 600; font-size: 15px;">
          Reply to %[2]s →
        </a>
      </div>
    </div>
    <div style="background-color: #f9f9f9; padding: 20px 30px; border-top: 1px solid #e8e8e8; text-align: center;">
      <p style="color: #888888; font-size: 12px; margin: 0;">This email was automatically generated from the contact form at rajuvisuals.com</p>
    </div>
  </div>
</body>
</html>`, brandColor, safeName, safeEmail, safeSubject, safeMessage)
}

func purchaseReceiptHTML(record *purchases.PurchaseRecord) string {
	safeAsset := html.EscapeString(record.AssetName)
	safeReceipt := html.EscapeString(record.ReceiptID)
	safePrice := html.EscapeString(fmt.Sprint(record.Price))
	safeLink := html.EscapeString(record.DownloadLink)
	download := ""
	if record.DownloadLink != "" {
		download = fmt.Sprintf(`
      <div style="text-align: center; margin-top: 30px;">
        <a href="%[2]s" style="display: inline-block; background: linear-gradient(135deg, %[1]s 0%%, #7C3FCC 100%%); color: #ffffff; text-decoration: none; padding: 14px 32px; border-radius: 8px; font-weight: 600; font-size: 15px;">
          Download Your Asset
        </a>
      </div>`, brandColor, safeLink)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; background-color: #f4f4f4;">
  <div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 12px rgba(0,0,0,0.1);">
    <div style="background: linear-gradient(135deg, %[1]s 0%%, #7C3FCC 100%%); padding: 40px 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 26px;">Thank you for your purchase!</h1>
    </div>
    <div style="padding: 35px 30px;">
      <table style="width: 100%%; border-collapse: collapse;">
        <tr>
          <td style="padding: 8px 0; color: #888888; font-size: 14px; width: 90px;">Receipt</td>
          <td style="padding: 8px 0; color: #333333; font-size: 16px; font-weight: 500;">%[2]s</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; color: #888888; font-size: 14px;">Item</td>
          <td style="padding: 8px 0; color: #333333; font-size: 16px; font-weight: 500;">%[3]s</td>
        </tr>
        <tr>
          <td style="padding: 8px 0; color: #888888; font-size: 14px;">Price</td>
          <td style="padding: 8px 0; color: #333333; font-size: 16px; font-weight: 500;">%[4]s</td>
        </tr>
      </table>%[5]s
    </div>
    <div style="background-color: #f9f9f9; padding: 30px; border-top: 1px solid #e8e8e8; text-align: center;">
      <p style="color: #888888; font-size: 13px; margin: 0;">Raju Visuals · Video Editor &amp; Motion Graphics Artist</p>
    </div>
  </div>
</body>
</html>`, brandColor, safeReceipt, safeAsset, safePrice, download)
}
