package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_TableName(t *testing.T) {
	assert.Equal(t, "transactions", Transaction{}.TableName())
}

func TestTransaction_CategoryID(t *testing.T) {
	expenseCat := uuid.New()
	incomeCat := uuid.New()

	tests := []struct {
		name string
		txn  Transaction
		want *uuid.UUID
	}{
		{"expense uses expense category", Transaction{Kind: KindExpense, ExpenseCategoryID: &expenseCat}, &expenseCat},
		{"income uses income category", Transaction{Kind: KindIncome, IncomeCategoryID: &incomeCat}, &incomeCat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.CategoryID())
		})
	}
}
