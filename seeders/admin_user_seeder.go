// Файл: seeders/admin_user_seeder.go
package seeders

import (
	"context"
	"fmt"
	"log"
	"os"

	"donation-system/internal/authz"
	"donation-system/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание пользователя-администратора...")

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@donation.local"
	}

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if err != pgx.ErrNoRows {
		return fmt.Errorf("ошибка при проверке существования администратора: %w", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		log.Println("    - ADMIN_PASSWORD не задан, используется пароль по умолчанию. Смените его после первого входа.")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (fio, email, password, role, is_active)
	          VALUES ($1, $2, $3, $4, TRUE) RETURNING id`
	err = db.QueryRow(ctx, query,
		"Администратор системы",
		email,
		hashedPassword,
		string(authz.RoleAdmin),
	).Scan(&userID)
	if err != nil {
		return fmt.Errorf("ошибка при создании администратора: %w", err)
	}

	log.Printf("    - Администратор успешно создан (id=%d, email=%s).", userID, email)
	return nil
}
