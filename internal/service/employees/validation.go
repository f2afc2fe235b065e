package employees

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/employees/models"
	"github.com/m04kA/SMC-StoreAdmin/pkg/ptr"
)

func buildEmployee(req *models.EmployeeRequest) (*domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required (max %d characters)", ErrInvalidInput, domain.MaxNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if !domain.ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	function := strings.TrimSpace(req.Function)
	if function == "" || len(function) > domain.MaxFunctionLength {
		return nil, fmt.Errorf("%w: function is required (max %d characters)", ErrInvalidInput, domain.MaxFunctionLength)
	}

	employee := &domain.Employee{
		StoreID:  req.StoreID,
		Name:     name,
		Email:    email,
		Function: function,
	}

	// Телефон и CPF необязательны, но если указаны - должны быть полными
	if strings.TrimSpace(req.Phone) != "" {
		phone, ok := domain.NormalizePhone(req.Phone)
		if !ok {
			return nil, fmt.Errorf("%w: phone must have %d-%d digits", ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
		}
		employee.Phone = ptr.Ptr(phone)
	}
	if strings.TrimSpace(req.CPF) != "" {
		cpf, ok := domain.NormalizeCPF(req.CPF)
		if !ok {
			return nil, fmt.Errorf("%w: cpf must have %d digits", ErrInvalidInput, domain.CPFDigits)
		}
		employee.CPF = ptr.Ptr(cpf)
	}

	commissionType, value, err := validateCommission(req.CommissionType, req.CommissionValue)
	if err != nil {
		return nil, err
	}
	employee.CommissionType = commissionType
	employee.CommissionValue = value

	return employee, nil
}

// validateCommission проверяет комиссию; для full значение всегда 0
func validateCommission(rawType string, value float64) (domain.CommissionType, float64, error) {
	commissionType := domain.CommissionType(strings.ToLower(strings.TrimSpace(rawType)))
	if commissionType == "" {
		commissionType = domain.DefaultCommissionType
	}
	if !commissionType.IsValid() {
		return "", 0, fmt.Errorf("%w: unknown type %q", ErrInvalidCommission, rawType)
	}

	switch commissionType {
	case domain.CommissionFull:
		return commissionType, 0, nil
	case domain.CommissionPercentage:
		if value < 0 || value > domain.MaxCommissionPercentage {
			return "", 0, fmt.Errorf("%w: percentage must be in 0..%d", ErrInvalidCommission, domain.MaxCommissionPercentage)
		}
	case domain.CommissionFixed:
		if value < 0 {
			return "", 0, fmt.Errorf("%w: fixed value must not be negative", ErrInvalidCommission)
		}
	}

	return commissionType, value, nil
}
