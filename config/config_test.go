package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("valeurs par défaut", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("STORAGE_BACKEND", "")
		cfg, err := Load("inexistant.env")
		if err != nil {
			t.Fatalf("Load() erreur = %v", err)
		}
		if cfg.Port != "8000" {
			t.Errorf("Port = %v, attendu 8000 (défaut)", cfg.Port)
		}
		if cfg.InfoFile != "info.json" || cfg.InviteFile != "invite.json" || cfg.CommentaireFile != "commentaire.json" {
			t.Errorf("fichiers = %s %s %s", cfg.InfoFile, cfg.InviteFile, cfg.CommentaireFile)
		}
		if cfg.MediaDir != "media" {
			t.Errorf("MediaDir = %v, attendu media", cfg.MediaDir)
		}
		if cfg.MaxAlerts != 50 {
			t.Errorf("MaxAlerts = %v, attendu 50", cfg.MaxAlerts)
		}
		if cfg.StorageBackend != StorageFile {
			t.Errorf("StorageBackend = %v, attendu file", cfg.StorageBackend)
		}
	})

	t.Run("PORT depuis env", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		cfg, err := Load("inexistant.env")
		if err != nil {
			t.Fatalf("Load() erreur = %v", err)
		}
		if cfg.Port != "9999" {
			t.Errorf("Port = %v, attendu 9999", cfg.Port)
		}
	})

	t.Run("MAX_UPLOAD_MB", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_MB", "10")
		cfg, err := Load("inexistant.env")
		if err != nil {
			t.Fatalf("Load() erreur = %v", err)
		}
		if cfg.MaxUploadBytes != 10<<20 {
			t.Errorf("MaxUploadBytes = %v, attendu %v", cfg.MaxUploadBytes, 10<<20)
		}
	})

	t.Run("entier invalide", func(t *testing.T) {
		t.Setenv("MAX_ALERTS", "beaucoup")
		if _, err := Load("inexistant.env"); err == nil {
			t.Error("Load() devrait échouer avec MAX_ALERTS invalide")
		}
	})

	t.Run("backend inconnu", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "redis")
		if _, err := Load("inexistant.env"); err == nil {
			t.Error("Load() devrait échouer avec STORAGE_BACKEND=redis")
		}
	})

	t.Run("CORS parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.com, http://b.com , c.com")
		cfg, err := Load("inexistant.env")
		if err != nil {
			t.Fatalf("Load() erreur = %v", err)
		}
		if len(cfg.CORSOrigins) != 3 {
			t.Errorf("CORSOrigins = %v, attendu 3 éléments", cfg.CORSOrigins)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"défaut valide", func(c *Config) {}, false},
		{"mongo valide", func(c *Config) { c.StorageBackend = StorageMongo }, false},
		{"MaxAlerts nul", func(c *Config) { c.MaxAlerts = 0 }, true},
		{"VAPID incomplet", func(c *Config) { c.VAPIDPublicKey = "pub" }, true},
		{"VAPID complet", func(c *Config) { c.VAPIDPublicKey = "pub"; c.VAPIDPrivateKey = "priv" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() erreur = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrivateFiles(t *testing.T) {
	cfg, err := Load("secrets.env")
	if err != nil {
		t.Fatalf("Load() erreur = %v", err)
	}

	got := cfg.PrivateFiles()
	want := []string{"info.json", "invite.json", "commentaire.json", "abonnements.json", "secrets.env"}
	if len(got) != len(want) {
		t.Fatalf("PrivateFiles() = %v, attendu %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PrivateFiles()[%d] = %v, attendu %v", i, got[i], want[i])
		}
	}

	if cfg, _ := Load(); len(cfg.EnvFiles) != 1 || cfg.EnvFiles[0] != ".env" {
		t.Errorf("EnvFiles par défaut = %v, attendu [.env]", cfg.EnvFiles)
	}
}
