package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"mariage-backend/config"
	"mariage-backend/utils"
)

func main() {
	app := &cli.Command{
		Name:  "generate-vapid",
		Usage: "Génère ou vérifie les clés VAPID des notifications push",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "subject",
				Usage: "Contact VAPID (mailto: ou https:)",
				Value: "mailto:votre-email@example.com",
			},
		},
		Action: generate,
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Vérifie les clés VAPID de la configuration (.env)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "env-file",
						Usage: "Fichier .env à charger",
						Value: ".env",
					},
				},
				Action: check,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	log.Info("🔐 Génération des clés VAPID...")
	return writeKeys(os.Stdout, cmd.String("subject"))
}

func writeKeys(w io.Writer, subject string) error {
	publicKey, privateKey, err := utils.GenerateVAPIDKeys()
	if err != nil {
		return fmt.Errorf("erreur lors de la génération des clés: %w", err)
	}

	fmt.Fprintln(w, "# Ajoutez ces lignes dans votre fichier .env")
	fmt.Fprintln(w, "VAPID_PUBLIC_KEY="+publicKey)
	fmt.Fprintln(w, "VAPID_PRIVATE_KEY="+privateKey)
	fmt.Fprintln(w, "VAPID_SUBJECT="+subject)
	return nil
}

func check(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return err
	}
	if !cfg.PushEnabled() {
		return fmt.Errorf("VAPID_PUBLIC_KEY et VAPID_PRIVATE_KEY ne sont pas définies")
	}
	if err := utils.CheckVAPIDKeys(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey); err != nil {
		return err
	}

	log.Info("✅ Clés VAPID valides", "subject", cfg.VAPIDSubject)
	return nil
}
