package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"railbook/infras/otel"
	"railbook/infras/s3"
	booking "railbook/internal/domains/booking/model"
	"railbook/internal/domains/booking/repository"
	"railbook/internal/domains/ticket/model"
	"railbook/shared/constant"

	"github.com/rs/zerolog/log"
)

// Ticket keeps the e-ticket archive in object storage in step with the ledger.
type Ticket interface {
	Archive(ctx context.Context, pnr string) (url string, err error)
	Remove(ctx context.Context, pnr string) error
}

type serviceImpl struct {
	ledger repository.Ledger
	s3     s3.S3
	otel   otel.Otel
}

func New(ledger repository.Ledger, s3 s3.S3, otel otel.Otel) Ticket {
	return &serviceImpl{
		ledger: ledger,
		s3:     s3,
		otel:   otel,
	}
}

// Archive renders and uploads the ticket of a confirmed booking. A booking cancelled before
// the event was processed is skipped.
func (s *serviceImpl) Archive(ctx context.Context, pnr string) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	b, err := s.ledger.FindByPNR(ctx, pnr)
	if err != nil {
		return constant.Empty, err //nolint:wrapcheck
	}

	if b.Status != booking.StatusConfirmed {
		log.Info().Str("pnr", pnr).Str("status", string(b.Status)).Msg("skipping ticket for booking that is not confirmed")

		return constant.Empty, nil
	}

	pdf, err := model.Render(b)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to render ticket")

		return constant.Empty, err //nolint:wrapcheck
	}

	url, err = s.s3.UploadFileBytes(ctx, model.Directory, model.FileName(pnr), constant.ContentTypePDF, pdf)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to archive ticket: %w", err)
	}

	log.Info().Str("pnr", pnr).Str("url", url).Msg("ticket archived")

	return url, nil
}

func (s *serviceImpl) Remove(ctx context.Context, pnr string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.s3.DeleteFile(ctx, model.Directory, model.FileName(pnr)); err != nil {
		return fmt.Errorf("failed to remove ticket: %w", err)
	}

	return nil
}
