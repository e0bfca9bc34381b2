package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

type sesSender struct {
	client *sesv2.Client
}

// NewSESSender creates an AWS SES v2 backed sender using static credentials.
func NewSESSender(ctx context.Context, cfg Config) (Sender, error) {
	if cfg.SESAccessKey == "" || cfg.SESSecretKey == "" {
		return nil, fmt.Errorf("%w: SES credentials are required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.SESRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SESAccessKey, cfg.SESSecretKey, ""),
		),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &sesSender{client: sesv2.NewFromConfig(awsCfg)}, nil
}

// Send implements Sender using the SES v2 SendEmail API with a simple
// plain-text body.
func (s *sesSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From()),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
