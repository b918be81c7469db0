// Файл: seeders/settings_seeder.go
package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func seedSiteSettings(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание стартовой записи настроек сайта...")

	var settingsID uint64
	err := db.QueryRow(ctx, "SELECT id FROM site_settings ORDER BY id ASC LIMIT 1").Scan(&settingsID)
	if err == nil {
		log.Println("    - Настройки сайта уже существуют. Пропускаем.")
		return nil
	}
	if err != pgx.ErrNoRows {
		return fmt.Errorf("ошибка при проверке настроек сайта: %w", err)
	}

	query := `INSERT INTO site_settings (site_name, tagline) VALUES ($1, $2)`
	if _, err := db.Exec(ctx, query, "Система учета пожертвований", "Учет взносов и комитетов"); err != nil {
		return fmt.Errorf("ошибка при создании настроек сайта: %w", err)
	}

	log.Println("    - Настройки сайта успешно созданы.")
	return nil
}
