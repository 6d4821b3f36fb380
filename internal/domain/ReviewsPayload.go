package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidPayload = errors.New("estrutura de avaliações inválida")

// RawReview é o formato recebido do serviço de avaliações
type RawReview struct {
	Rating string `json:"Rating"`
	Day    string `json:"day"`
}

// ReviewsPayload é o corpo de GET /api/reviews
type ReviewsPayload struct {
	Data *ReviewsData `json:"data"`
}

type ReviewsData struct {
	StarCounts map[string]RawReview `json:"starCounts"`
}

// Records valida o payload e converte as entradas em RatingRecord
func (p *ReviewsPayload) Records(loc *time.Location) ([]RatingRecord, error) {
	if p == nil || p.Data == nil || p.Data.StarCounts == nil {
		return nil, fmt.Errorf("%w: starCounts ausente", ErrInvalidPayload)
	}

	return ParseStarCounts(p.Data.StarCounts, loc)
}

// ParseStarCounts converte o mapa chave -> avaliação, ordenado pela chave.
// Uma única entrada inválida invalida o payload inteiro.
func ParseStarCounts(starCounts map[string]RawReview, loc *time.Location) ([]RatingRecord, error) {
	keys := make([]string, 0, len(starCounts))
	for key := range starCounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]RatingRecord, 0, len(keys))
	for _, key := range keys {
		record, err := ParseRawReview(key, starCounts[key], loc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func ParseRawReview(key string, raw RawReview, loc *time.Location) (RatingRecord, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(raw.Rating))
	if err != nil {
		return RatingRecord{}, fmt.Errorf("%w: rating %q da chave %s", ErrInvalidPayload, raw.Rating, key)
	}

	if rating < MinRating || rating > MaxRating {
		return RatingRecord{}, fmt.Errorf("%w: rating %d fora do intervalo na chave %s", ErrInvalidPayload, rating, key)
	}

	day, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(raw.Day), loc)
	if err != nil {
		return RatingRecord{}, fmt.Errorf("%w: data %q da chave %s", ErrInvalidPayload, raw.Day, key)
	}

	return RatingRecord{Key: key, Rating: rating, Day: day}, nil
}

// ToRawReview faz o caminho inverso, usado ao expor registros no formato do serviço
func (r RatingRecord) ToRawReview() RawReview {
	return RawReview{
		Rating: strconv.Itoa(r.Rating),
		Day:    r.Day.Format(time.DateOnly),
	}
}
