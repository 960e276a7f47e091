package service

import (
	"fmt"
	"html"
	"strings"

	"teslastats/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendImportReport 发送导入结果报告
func (s *EmailService) SendImportReport(to []string, report *ImportReport) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 email.enabled=true")
	}
	if len(to) == 0 {
		return nil
	}

	subject := fmt.Sprintf("【Tesla 交付数据】导入完成: %s", report.FileName)
	if report.RejectedRows > 0 {
		subject = fmt.Sprintf("【Tesla 交付数据】导入完成（%d 行被拒绝）: %s", report.RejectedRows, report.FileName)
	}
	return s.sendEmail(to, subject, s.generateImportReportBody(report))
}

// generateImportReportBody 生成导入报告邮件内容
func (s *EmailService) generateImportReportBody(report *ImportReport) string {
	var rows strings.Builder
	for _, e := range report.Errors {
		rows.WriteString(fmt.Sprintf("<tr><td>%d</td><td>%s</td><td>%s</td></tr>",
			e.Line, html.EscapeString(e.Column), html.EscapeString(e.Message)))
	}

	errorTable := "<p>没有被拒绝的行。</p>"
	if rows.Len() > 0 {
		errorTable = `<table><tr><th>行号</th><th>列</th><th>错误</th></tr>` + rows.String() + `</table>`
		if report.Truncated {
			errorTable += "<p>仅列出前若干条错误。</p>"
		}
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 640px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
        .header { background: #cc0000; color: white; padding: 24px; text-align: center; }
        .content { padding: 30px; color: #333; line-height: 1.8; }
        table { border-collapse: collapse; width: 100%%; font-size: 13px; }
        th, td { border: 1px solid #ddd; padding: 6px 8px; text-align: left; }
        .footer { background: #f8f9fa; padding: 16px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>Tesla 交付数据导入报告</h2></div>
        <div class="content">
            <p>文件: <strong>%s</strong></p>
            <p>批次: %s</p>
            <p>总行数 %d，导入 %d，拒绝 %d（其中重复 %d）</p>
            %s
        </div>
        <div class="footer"><p>此邮件由系统自动发送，请勿回复</p></div>
    </div>
</body>
</html>
`, html.EscapeString(report.FileName), report.BatchID,
		report.TotalRows, report.ImportedRows, report.RejectedRows, report.DuplicateRows,
		errorTable)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to []string, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【Tesla 交付数据】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
</body>
</html>
`
	return s.sendEmail([]string{toEmail}, subject, body)
}
