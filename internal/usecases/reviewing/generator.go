package reviewing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/maxreviewer/reviews-api/internal/domain"
)

const (
	syntheticDays      = 365
	syntheticMinPerDay = 2
	syntheticMaxPerDay = 5
	syntheticKeyFormat = "review_%d_%d"
)

// Pesos para 1..5 estrelas, enviesados para 5
var ratingWeights = [domain.MaxRating]float64{0.05, 0.10, 0.15, 0.30, 0.40}

// Generator produz uma amostra plausível de avaliações dos últimos 365 dias.
// Serve apenas como substituto quando a origem real está indisponível.
type Generator struct {
	location *time.Location
	now      func() time.Time
	newRand  func() *rand.Rand
}

type GeneratorOption func(*Generator)

// WithRandSource permite fixar a semente, útil em testes
func WithRandSource(newRand func() *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.newRand = newRand
	}
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(loc *time.Location, opts ...GeneratorOption) *Generator {
	if loc == nil {
		loc = time.UTC
	}

	g := &Generator{
		location: loc,
		now:      time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Generator) Name() domain.Source {
	return domain.SourceSynthetic
}

// FetchRecords implementa RecordSource; nunca falha
func (g *Generator) FetchRecords(_ context.Context) ([]domain.RatingRecord, error) {
	return g.Generate(g.now()), nil
}

// FetchRecordsAt gera a coleção terminando em now, ignorando o relógio interno
func (g *Generator) FetchRecordsAt(_ context.Context, now time.Time) ([]domain.RatingRecord, error) {
	return g.Generate(now), nil
}

// Generate cria de 2 a 5 avaliações para cada um dos 365 dias terminando em now (inclusive)
func (g *Generator) Generate(now time.Time) []domain.RatingRecord {
	// Cada chamada usa sua própria fonte aleatória
	rng := g.newRand()
	today := domain.DateOnly(now, g.location)

	records := make([]domain.RatingRecord, 0, syntheticDays*syntheticMaxPerDay)
	for i := 0; i < syntheticDays; i++ {
		day := today.AddDate(0, 0, -i)
		perDay := syntheticMinPerDay + rng.IntN(syntheticMaxPerDay-syntheticMinPerDay+1)

		for j := 0; j < perDay; j++ {
			records = append(records, domain.RatingRecord{
				Key:    fmt.Sprintf(syntheticKeyFormat, i, j),
				Rating: sampleRating(rng.Float64()),
				Day:    day,
			})
		}
	}

	return records
}

// sampleRating escolhe a nota pela soma acumulada dos pesos contra um sorteio em [0,1)
func sampleRating(draw float64) int {
	cumulative := 0.0
	for i, weight := range ratingWeights {
		cumulative += weight
		if draw < cumulative {
			return i + 1
		}
	}

	return domain.MaxRating
}
