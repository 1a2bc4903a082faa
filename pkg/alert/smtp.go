package alert

import (
	"context"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/config"
	"github.com/raids-lab/agencyos/pkg/logutils"
)

const defaultSMTPPort = 587

type SMTPAlerter struct {
	dialer *gomail.Dialer
	from   string
}

func newSMTPAlerter(cfg *config.Config) alertHandlerInterface {
	port, err := strconv.Atoi(cfg.SMTP.Port)
	if err != nil {
		port = defaultSMTPPort
	}
	return &SMTPAlerter{
		dialer: gomail.NewDialer(cfg.SMTP.Host, port, cfg.SMTP.User, cfg.SMTP.Password),
		from:   cfg.SMTP.Notify,
	}
}

func (sa *SMTPAlerter) SendMessageTo(_ context.Context, receiver *model.Profile, subject, body string) error {
	if receiver.Email == nil || *receiver.Email == "" {
		logutils.Log.Warnf("%s does not have an email address", receiver.Name)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", sa.from)
	m.SetAddressHeader("To", *receiver.Email, receiver.Name)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := sa.dialer.DialAndSend(m); err != nil {
		logutils.Log.Errorf("Failed to send email to %s: %v", *receiver.Email, err)
		return err
	}

	logutils.Log.Infof("Sent email to %s", *receiver.Email)
	return nil
}
