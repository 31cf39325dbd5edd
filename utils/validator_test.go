package utils

import (
	"errors"
	"testing"
)

func TestRequirePresent(t *testing.T) {
	empty := ""
	value := "Jean"

	tests := []struct {
		name    string
		value   *string
		wantErr bool
	}{
		{"champ rempli", &value, false},
		{"champ vide mais présent", &empty, false},
		{"champ absent", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequirePresent("nom", tt.value, "Champ 'nom' requis")
			if (err != nil) != tt.wantErr {
				t.Errorf("RequirePresent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsKind(err, KindBadRequest) {
				t.Errorf("RequirePresent() devrait retourner une erreur 400, got %v", err)
			}
		})
	}
}

func TestRequireNonBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"champ rempli", "Bienvenue", false},
		{"champ vide", "", true},
		{"champ espaces uniquement", "   \t\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireNonBlank("message", tt.value, "Message vide")
			if (err != nil) != tt.wantErr {
				t.Errorf("RequireNonBlank() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var ve ValidationError
				if !errors.As(err, &ve) || ve.Field != "message" {
					t.Errorf("RequireNonBlank() cause = %v, attendu ValidationError sur message", err)
				}
			}
		})
	}
}
