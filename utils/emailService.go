package utils

import (
	"claimit/config"
	"fmt"
	"net/smtp"
	"strings"
)

// SendClaimStatusEmail notifies a claimant that an adjuster moved their claim
// to a new status. Best-effort: callers fire this in a goroutine and ignore
// the error beyond logging.
func SendClaimStatusEmail(email, userName, claimNumber, newStatus string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	to := []string{email}

	subject := "Subject: Claim Status Update - claimIT\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	statusLabel := strings.ReplaceAll(newStatus, "_", " ")

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Claim Status Update</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your claim has a new status:</p>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Claim Number:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
						<p style="font-size: 18px; color: #4CAF50; margin-top: 15px; text-transform: capitalize;">%s</p>
					</div>
					<p style="font-size: 14px; color: #666666;">Log in to your claimIT dashboard to review the details and any next steps.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">claimIT Team</p>
				</div>
			</body>
		</html>
	`, userName, claimNumber, statusLabel)

	message := []byte(subject + "\n" + body)

	// Auth setup
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message)
	if err != nil {
		fmt.Println("Error sending claim status email:", err)
		return err
	}

	fmt.Println("Claim status email sent successfully to", email)
	return nil
}
