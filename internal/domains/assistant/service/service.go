package service

import (
	"context"
	"fmt"
	"time"

	"mykuliah/config"
	"mykuliah/infras/gemini"
	"mykuliah/infras/otel"
	"mykuliah/internal/domains/assistant/model/dto"
	"mykuliah/internal/domains/assistant/prompt"
	"mykuliah/internal/domains/booking/rules"
	roomModel "mykuliah/internal/domains/room/model"
	roomRepo "mykuliah/internal/domains/room/repository"
	"mykuliah/shared/constant"
	"mykuliah/shared/logger"
)

type Assistant interface {
	Ask(ctx context.Context, req dto.AskRequest) (dto.AskResponse, error)
}

type serviceImpl struct {
	gemini      gemini.Gemini
	roomRepo    roomRepo.Room
	hours       rules.Hours
	temperature float32
	timeout     time.Duration
	otel        otel.Otel
}

func New(cfg *config.Config, gemini gemini.Gemini, roomRepo roomRepo.Room, hours rules.Hours, otel otel.Otel) Assistant {
	return &serviceImpl{
		gemini:      gemini,
		roomRepo:    roomRepo,
		hours:       hours,
		temperature: cfg.External.Gemini.Temperature,
		timeout:     time.Duration(cfg.External.Gemini.TimeoutSeconds) * time.Second,
		otel:        otel,
	}
}

// Ask never fails: any problem reaching the model is logged and answered with prompt.Fallback.
func (s *serviceImpl) Ask(ctx context.Context, req dto.AskRequest) (res dto.AskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assistant.Ask")
	defer scope.End()

	answer, err := s.generate(ctx, req.Question)
	if err != nil {
		scope.TraceError(err)
		scope.SetAttribute("assistant.fallback", true)

		l := logger.Requester(ctx)
		l.Error().Err(err).Msg("failed to get assistant answer")

		res.Answer = prompt.Fallback

		return res, nil
	}

	res.Answer = answer

	return res, nil
}

func (s *serviceImpl) generate(ctx context.Context, question string) (string, error) {
	rooms, err := s.roomRepo.GetAll(ctx, roomModel.Filter{})
	if err != nil {
		return "", fmt.Errorf("failed to get rooms: %w", err)
	}

	system, err := prompt.System(s.hours, rooms)
	if err != nil {
		return "", err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	answer, err := s.gemini.Generate(ctx, gemini.Request{
		SystemInstruction: system,
		Prompt:            question,
		Temperature:       s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	if answer == constant.Empty {
		return "", gemini.ErrEmptyResponse
	}

	return answer, nil
}
