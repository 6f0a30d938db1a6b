package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/vfg2006/production-report-api/infrastructure/integrator/mailer/smtpclient"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/log"
	"github.com/vfg2006/production-report-api/pkg/utils"
	gomail "github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrEmptyReport = errors.New("mailer: relatório vazio")

type MailIntegrator struct {
	cfg       *config.Config
	Client    smtpclient.Client
	templates map[domain.ReportView]*template.Template
}

type templateData struct {
	Sender   string
	Owner    string
	Protocol string
	Report   *domain.ReportData
}

type tableRow struct {
	Label string
	Value any
}

var templateFuncs = template.FuncMap{
	"moeda": utils.FormatCurrencyBRL,
	"data":  utils.FormatDateBR,
	"linha": func(label string, value any) tableRow {
		return tableRow{Label: label, Value: value}
	},
}

func New(cfg *config.Config, client smtpclient.Client) (*MailIntegrator, error) {
	templates := make(map[domain.ReportView]*template.Template, 3)

	for _, view := range []domain.ReportView{domain.ReportViewFull, domain.ReportViewPrivate, domain.ReportViewInsurance} {
		name := fmt.Sprintf("%s.html", view)

		tpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, errors.Wrapf(err, "mailer: erro ao carregar template %s", name)
		}

		templates[view] = tpl
	}

	return &MailIntegrator{
		cfg:       cfg,
		Client:    client,
		templates: templates,
	}, nil
}

func (m *MailIntegrator) SendReport(ctx context.Context, message domain.ReportMessage) error {
	if message.Report == nil {
		return ErrEmptyReport
	}

	body, err := m.RenderBody(message)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.senderName(), m.cfg.Mail.User); err != nil {
		return errors.Wrap(err, "mailer: remetente inválido")
	}
	if err := msg.To(message.To); err != nil {
		return errors.Wrap(err, "mailer: destinatário inválido")
	}
	msg.Subject(Subject(message.Report.View, message.Report.Period))
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.Client.Send(ctx, msg); err != nil {
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"report_protocol": message.Protocol,
		"report_view":     message.Report.View,
	}).Debug("mailer: email enviado")

	return nil
}

// RenderBody gera o HTML do email de acordo com o recorte do relatório
func (m *MailIntegrator) RenderBody(message domain.ReportMessage) (string, error) {
	if message.Report == nil {
		return "", ErrEmptyReport
	}

	tpl, exists := m.templates[message.Report.View]
	if !exists {
		return "", errors.Errorf("mailer: sem template para o recorte %s", message.Report.View)
	}

	var buf bytes.Buffer
	err := tpl.ExecuteTemplate(&buf, tpl.Name(), templateData{
		Sender:   m.senderName(),
		Owner:    message.Owner.Name,
		Protocol: message.Protocol,
		Report:   message.Report,
	})
	if err != nil {
		return "", errors.Wrap(err, "mailer: erro ao montar corpo do email")
	}

	return buf.String(), nil
}

// Subject segue "Relatório[ Particular| Planos de Saúde] - Período: dd/mm/aaaa a dd/mm/aaaa"
func Subject(view domain.ReportView, period domain.Period) string {
	prefix := "Relatório"
	switch view {
	case domain.ReportViewPrivate:
		prefix = "Relatório Particular"
	case domain.ReportViewInsurance:
		prefix = "Relatório Planos de Saúde"
	}

	return fmt.Sprintf("%s - Período: %s a %s", prefix, utils.FormatDateBR(period.Start), utils.FormatDateBR(period.End))
}

func (m *MailIntegrator) senderName() string {
	if m.cfg.Mail.SenderName == "" {
		return "FisiMaster"
	}
	return m.cfg.Mail.SenderName
}
