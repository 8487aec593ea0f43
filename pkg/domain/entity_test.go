package domain_test

import (
	"testing"

	"lugo/pkg/domain"
	"lugo/pkg/serrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewCompany_Validation(t *testing.T) {
	c, err := domain.NewCompany("c1", "Acme Imóveis", "Acme Ltda", "12.345.678/0001-00")
	require.NoError(t, err)
	require.Equal(t, "12345678000100", c.CNPJ.String())

	_, err = domain.NewCompany("c1", "", "Acme Ltda", "12345678000100")
	require.ErrorIs(t, err, serrors.ErrInvalid)

	_, err = domain.NewCompany("c1", "Acme", "", "12345678000100")
	require.ErrorIs(t, err, serrors.ErrInvalid)

	_, err = domain.NewCompany("c1", "Acme", "Acme Ltda", "123")
	require.ErrorIs(t, err, serrors.ErrInvalid)
}

func TestCompany_Alter_AppliesNothingOnFailure(t *testing.T) {
	c, err := domain.NewCompany("c1", "Acme", "Acme Ltda", "12345678000100")
	require.NoError(t, err)

	err = c.Alter("New Name", "New Legal", "bad")
	require.ErrorIs(t, err, serrors.ErrInvalid)
	require.Equal(t, "Acme", c.TradeName)
	require.Equal(t, "12345678000100", c.CNPJ.String())

	require.NoError(t, c.Alter("New Name", "New Legal", "99888777000166"))
	require.Equal(t, "New Name", c.TradeName)
	require.Equal(t, "99888777000166", c.CNPJ.String())
}

func TestNewPerson_AffiliationRules(t *testing.T) {
	_, err := domain.NewPerson("p1", "Ana", "Silva", "11122233344", "", domain.RoleClient)
	require.ErrorIs(t, err, serrors.ErrInvalid)

	_, err = domain.NewPerson("p1", "Ana", "Silva", "11122233344", "c1", domain.Role("boss"))
	require.ErrorIs(t, err, serrors.ErrInvalid)

	p, err := domain.NewPerson("p1", "Ana", "Silva", "111.222.333-44", "c1", domain.RoleEmployee)
	require.NoError(t, err)
	require.True(t, p.Affiliated())
	require.Equal(t, "11122233344", p.CPF.String())

	unaffiliated, err := domain.NewPerson("p2", "Bia", "Souza", "55566677788", "", "")
	require.NoError(t, err)
	require.False(t, unaffiliated.Affiliated())
}

func TestPerson_Alter_DoesNotTouchAffiliation(t *testing.T) {
	p, err := domain.NewPerson("p1", "Ana", "Silva", "11122233344", "c1", domain.RoleClient)
	require.NoError(t, err)

	require.ErrorIs(t, p.Alter("", "Silva", "11122233344"), serrors.ErrInvalid)
	require.Equal(t, "Ana", p.GivenName)

	require.NoError(t, p.Alter("Ana Maria", "Silva", "99988877766"))
	require.Equal(t, "c1", p.CompanyKey)
	require.Equal(t, domain.RoleClient, p.Role)
	require.Equal(t, "99988877766", p.CPF.String())
}

func TestNewProperty_AreaMustBePositive(t *testing.T) {
	area := 0
	_, err := domain.NewProperty("i1", "p1", "Rua A", &area)
	require.ErrorIs(t, err, serrors.ErrInvalid)

	// area is optional
	p, err := domain.NewProperty("i1", "p1", "Rua A", nil)
	require.NoError(t, err)
	require.Nil(t, p.SquareMeters)

	area = 100
	p, err = domain.NewProperty("i1", "p1", "Rua A", &area)
	require.NoError(t, err)
	require.Equal(t, 100, *p.SquareMeters)
}

func TestProperty_UpdateRegistration(t *testing.T) {
	area := 100
	p, err := domain.NewProperty("i1", "p1", "Rua A", &area)
	require.NoError(t, err)

	bad := -1
	require.ErrorIs(t, p.UpdateRegistration("Rua B", &bad), serrors.ErrInvalid)
	require.Equal(t, "Rua A", p.Address)

	require.NoError(t, p.UpdateRegistration("Rua B", nil))
	require.Equal(t, "Rua B", p.Address)
	require.Nil(t, p.SquareMeters)
}

func TestNewListing_AmountsMustBePositive(t *testing.T) {
	price := decimal.NewFromInt(1000)
	condo := decimal.NewFromInt(200)
	tax := decimal.NewFromInt(50)

	l, err := domain.NewListing("a1", "i1", price, condo, tax)
	require.NoError(t, err)
	require.True(t, l.Price.Equal(price))

	_, err = domain.NewListing("a1", "i1", decimal.Zero, condo, tax)
	require.ErrorIs(t, err, serrors.ErrInvalid)

	_, err = domain.NewListing("a1", "i1", price, decimal.NewFromInt(-1), tax)
	require.ErrorIs(t, err, serrors.ErrInvalid)

	_, err = domain.NewListing("a1", "i1", price, condo, decimal.Zero)
	require.ErrorIs(t, err, serrors.ErrInvalid)
}

func TestListing_AlterAmounts_AllOrNothing(t *testing.T) {
	l, err := domain.NewListing("a1", "i1",
		decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(50))
	require.NoError(t, err)

	err = l.AlterAmounts(decimal.NewFromInt(2000), decimal.Zero, decimal.NewFromInt(60))
	require.ErrorIs(t, err, serrors.ErrInvalid)
	require.True(t, l.Price.Equal(decimal.NewFromInt(1000)))
	require.True(t, l.CondoFee.Equal(decimal.NewFromInt(200)))

	require.NoError(t, l.AlterAmounts(
		decimal.NewFromInt(2000), decimal.NewFromInt(250), decimal.NewFromInt(60)))
	require.True(t, l.Price.Equal(decimal.NewFromInt(2000)))
}

func TestNewAccount_HashesSecret(t *testing.T) {
	a, err := domain.NewAccount("u1", "p1", "ana@example.com", "s3cret", "s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", a.PasswordHash)
	require.True(t, a.VerifyPassword("s3cret"))
	require.False(t, a.VerifyPassword("other"))
}

func TestNewAccount_RejectsMismatchedConfirmation(t *testing.T) {
	_, err := domain.NewAccount("u1", "p1", "ana@example.com", "s3cret", "different")
	require.ErrorIs(t, err, serrors.ErrInvalid)

	_, err = domain.NewAccount("u1", "p1", "ana@example.com", "", "")
	require.ErrorIs(t, err, serrors.ErrInvalid)
}

func TestAccount_SetPassword_KeepsHashOnFailure(t *testing.T) {
	a, err := domain.NewAccount("u1", "p1", "ana@example.com", "s3cret", "s3cret")
	require.NoError(t, err)
	oldHash := a.PasswordHash

	require.ErrorIs(t, a.SetPassword("new", "other"), serrors.ErrInvalid)
	require.Equal(t, oldHash, a.PasswordHash)

	require.NoError(t, a.SetPassword("newpass", "newpass"))
	require.NotEqual(t, oldHash, a.PasswordHash)
	require.True(t, a.VerifyPassword("newpass"))
}
