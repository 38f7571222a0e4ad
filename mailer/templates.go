package mailer

import (
	"fmt"
	"html"
	"time"
)

func wrap(title, body string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">%s</h2>
					%s
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Eduak Team</p>
				</div>
			</body>
		</html>
	`, title, body)
}

// OTPEmail renders the verification code message.
func OTPEmail(code string, ttl time.Duration) (subject, body string) {
	subject = "Your Eduak verification code"
	body = wrap("Email Verification", fmt.Sprintf(`
					<p style="font-size: 16px; color: #555555; text-align: center;">Your One Time Password (OTP) is:</p>
					<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%s</h1>
					<p style="font-size: 14px; color: #999999; text-align: center;">It expires in %d minutes. Do not share it with anyone.</p>`,
		html.EscapeString(code), int(ttl.Minutes())))
	return subject, body
}

// EnrollmentEmail renders the enrollment confirmation.
func EnrollmentEmail(userName, courseTitle string) (subject, body string) {
	subject = "Course Enrollment Confirmation"
	body = wrap("Enrollment Successful!", fmt.Sprintf(`
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>`,
		html.EscapeString(userName), html.EscapeString(courseTitle)))
	return subject, body
}
