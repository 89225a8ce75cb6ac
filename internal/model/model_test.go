package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountHasFixedDeposit(t *testing.T) {
	assert.False(t, Account{}.HasFixedDeposit())
	assert.True(t, Account{FixedDeposit: 1}.HasFixedDeposit())
}

func TestLoanActive(t *testing.T) {
	assert.False(t, Loan{}.Active())
	assert.True(t, Loan{Principal: 300}.Active())
}
