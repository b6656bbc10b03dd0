package service

import (
	"context"

	"github.com/google/uuid"

	"financequest/internal/module/cashflow/recurring/domain"
	"financequest/internal/module/cashflow/recurring/dto"
	"financequest/internal/module/cashflow/recurring/repository"
	categoryservice "financequest/internal/module/reference/category/service"
	transactiondomain "financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
)

// CategoryChecker is the slice of the category module this service needs
// to validate create/update payloads.
type CategoryChecker = categoryservice.Reader

// TransactionStore is the slice of the transaction store the materializer
// needs to create rows and detect already-materialized occurrences.
// Declared here, in the consumer, and satisfied by the transaction
// module's repository without either package importing the other's fx
// wiring.
type TransactionStore interface {
	Create(ctx context.Context, txn *transactiondomain.Transaction) error
	ExistsByTemplateOccurrence(ctx context.Context, templateID uuid.UUID, occurredAt caldate.Date) (bool, error)
	DetachTemplate(ctx context.Context, templateID uuid.UUID) error
}

// Creator handles template creation.
type Creator interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateTemplateRequest) (*domain.Template, error)
}

// Reader handles template reads.
type Reader interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Template, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Template, error)
}

// Updater handles partial updates and pause/resume.
type Updater interface {
	Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTemplateRequest) (*domain.Template, error)
	SetPaused(ctx context.Context, userID, id uuid.UUID, paused bool) (*domain.Template, error)
}

// Deleter handles deletion; deleting detaches (not deletes) the
// transactions the template already materialized.
type Deleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Materializer ensures every occurrence of every active template in a
// window exists as a concrete transaction row.
type Materializer interface {
	Materialize(ctx context.Context, userID uuid.UUID, start, end caldate.Date) error
}

// Service is the composite interface for the recurrence module.
type Service interface {
	Creator
	Reader
	Updater
	Deleter
	Materializer
}

type recurringService struct {
	repo        repository.Repository
	categories  CategoryChecker
	transactions TransactionStore
}

// NewService creates a new recurring-template service.
func NewService(repo repository.Repository, categories CategoryChecker, transactions TransactionStore) Service {
	return &recurringService{repo: repo, categories: categories, transactions: transactions}
}
