package reviewing

import (
	"context"
	"time"

	"github.com/maxreviewer/reviews-api/internal/domain"
)

// RecordSource entrega a coleção completa de avaliações; cada chamada substitui a anterior
type RecordSource interface {
	// Name identifica a origem nos logs e na resposta
	Name() domain.Source
	// FetchRecords busca todas as avaliações disponíveis na origem
	FetchRecords(ctx context.Context) ([]domain.RatingRecord, error)
}

// WindowedRecordSource é implementada por origens capazes de filtrar na própria consulta
type WindowedRecordSource interface {
	RecordSource
	FetchRecordsSince(ctx context.Context, start time.Time) ([]domain.RatingRecord, error)
}

// ClockedRecordSource produz a coleção relativa a um instante; o serviço passa o próprio relógio
type ClockedRecordSource interface {
	RecordSource
	FetchRecordsAt(ctx context.Context, now time.Time) ([]domain.RatingRecord, error)
}

// Reviewer é a interface consumida pela camada HTTP
type Reviewer interface {
	// GetSummary calcula o resumo do dashboard para os últimos months meses
	GetSummary(ctx context.Context, months int) (*domain.ReviewSummary, error)

	// GetAvailablePeriods retorna as opções do seletor de período
	GetAvailablePeriods() *domain.AvailablePeriods
}
