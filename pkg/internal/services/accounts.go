package services

import (
	"fmt"

	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
)

func ListAccounts(take int, offset int) ([]models.Account, error) {
	var accounts []models.Account
	err := database.C.
		Order("created_at ASC").
		Offset(offset).Limit(take).
		Find(&accounts).Error

	return accounts, err
}

func GetAccount(id string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func SetAccountActive(account models.Account, isActive bool) (models.Account, error) {
	account.IsActive = isActive
	err := database.C.Save(&account).Error

	return account, err
}

// SetAccountAdmin grants or revokes the admin flag. The super-admin flag
// is provisioned out of band and never changes through this surface.
func SetAccountAdmin(account models.Account, operator models.Account, isAdmin bool) (models.Account, error) {
	if !operator.IsSuperAdmin {
		return account, fmt.Errorf("only super admins can change admin roles")
	}
	if account.IsSuperAdmin {
		return account, fmt.Errorf("super admin roles cannot be changed here")
	}

	account.IsAdmin = isAdmin
	err := database.C.Save(&account).Error

	return account, err
}

func DeleteAccount(account models.Account, operator models.Account) error {
	if account.IsSuperAdmin {
		return fmt.Errorf("super admin accounts cannot be deleted")
	}
	if account.ID == operator.ID {
		return fmt.Errorf("cannot delete your own account")
	}

	return database.C.Delete(&account).Error
}
