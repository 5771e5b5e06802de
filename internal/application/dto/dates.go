package dto

import (
	"time"
)

// Formatos ISO-8601 aceitos em campos de data, do mais ao menos específico.
// O frontend envia RFC3339 com "Z"; formulários antigos mandam data sem fuso ou só a data.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISODate interpreta uma data ISO-8601. Devolve erro se nenhum layout casar.
func ParseISODate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
