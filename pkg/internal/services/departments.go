package services

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/pulseworks/pulsecheck/pkg/internal/cache"
	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/samber/lo"
)

const departmentSizesCacheKey = "department-sizes"

func ListDepartments() ([]models.Department, error) {
	var departments []models.Department
	err := database.C.Order("name ASC").Find(&departments).Error

	return departments, err
}

func SetDepartmentHeadcount(name string, headcount int) (models.Department, error) {
	department := models.Department{Name: name, Headcount: headcount}
	if err := database.C.Save(&department).Error; err != nil {
		return department, err
	}
	_ = FlushDepartmentSizesCache()

	return department, nil
}

// GetDepartmentSizes returns the headcount table keyed by department
// name. It is reference data read on every analytics request, so it sits
// behind a short-lived cache; staleness only delays a headcount edit, it
// cannot make two identical analytics inputs disagree.
func GetDepartmentSizes() (map[string]int, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if cached, err := marshal.Get(ctx, departmentSizesCacheKey, new(map[string]int)); err == nil {
		return *(cached.(*map[string]int)), nil
	}

	departments, err := ListDepartments()
	if err != nil {
		return nil, err
	}

	sizes := lo.SliceToMap(departments, func(item models.Department) (string, int) {
		return item.Name, item.Headcount
	})

	_ = marshal.Set(
		ctx,
		departmentSizesCacheKey,
		sizes,
		store.WithExpiration(time.Minute),
		store.WithTags([]string{"departments"}),
	)

	return sizes, nil
}

func FlushDepartmentSizesCache() error {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if err := marshal.Invalidate(ctx, store.WithInvalidateTags([]string{"departments"})); err != nil {
		return err
	}
	return marshal.Delete(ctx, departmentSizesCacheKey)
}
