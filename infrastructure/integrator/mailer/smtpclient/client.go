package smtpclient

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/production-report-api/internal/config"
	gomail "github.com/wneessen/go-mail"
)

const dialTimeout = 15 * time.Second

type Client interface {
	Send(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPClient abre uma conexão nova a cada envio, então pode ser usado por vários
// envios ao mesmo tempo
type SMTPClient struct {
	host    string
	options []gomail.Option
}

func NewClient(cfg *config.Config) Client {
	options := []gomail.Option{
		gomail.WithPort(cfg.Mail.Port),
		gomail.WithTimeout(dialTimeout),
		gomail.WithTLSPolicy(tlsPolicy(cfg.Mail.RequireTLS)),
	}

	if cfg.Mail.User != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Mail.User),
			gomail.WithPassword(cfg.Mail.Password),
		)
	}

	return &SMTPClient{
		host:    cfg.Mail.Host,
		options: options,
	}
}

func (c *SMTPClient) Send(ctx context.Context, messages ...*gomail.Msg) error {
	client, err := gomail.NewClient(c.host, c.options...)
	if err != nil {
		return errors.Wrap(err, "smtp: configuração inválida")
	}

	if err := client.DialAndSendWithContext(ctx, messages...); err != nil {
		return errors.Wrapf(err, "smtp: erro ao enviar para %s", c.host)
	}

	return nil
}

func tlsPolicy(required bool) gomail.TLSPolicy {
	if required {
		return gomail.TLSMandatory
	}
	return gomail.TLSOpportunistic
}
