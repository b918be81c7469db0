package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdminAndSettings создает администратора и стартовую запись настроек сайта.
// Повторный запуск безопасен: существующие записи не перезаписываются.
func SeedAdminAndSettings(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения базовых данных...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}
	if err := seedSiteSettings(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания настроек сайта: %v", err)
	}

	log.Println("✅ Наполнение базовых данных завершено!")
}
