package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// RatingRecord representa uma avaliação (estrelas) recebida em um dia
type RatingRecord struct {
	Key    string    `json:"key"`
	Rating int       `json:"rating"`
	Day    time.Time `json:"day"` // Sempre meia-noite no fuso de referência
}

// Source identifica a origem da coleção de avaliações
type Source string

const (
	SourceRemote    Source = "remote"
	SourceDatabase  Source = "database"
	SourceSynthetic Source = "synthetic"
)

// DateOnly trunca a data para meia-noite mantendo o fuso informado
func DateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
