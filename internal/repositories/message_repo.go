package repositories

import (
	"context"

	"contactbox/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of pgxpool.Pool the repositories need. pgxmock
// satisfies it in tests.
type Database interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	List(ctx context.Context) ([]*models.Message, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
}

type messageRepo struct {
	db Database
}

func NewMessageRepo(db Database) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO mensajes (id, name, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, message.ID, message.Name, message.Email, message.Phone, message.Message, message.Status)
	return err
}

func (r *messageRepo) List(ctx context.Context) ([]*models.Message, error) {
	query := `
		SELECT id, name, email, phone, message, status
		FROM mensajes
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message := &models.Message{}
		if err := rows.Scan(&message.ID, &message.Name, &message.Email, &message.Phone, &message.Message, &message.Status); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

func (r *messageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	query := `UPDATE mensajes SET status = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
