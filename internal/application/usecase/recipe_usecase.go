package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// RecipeUseCase casos de uso de recetas: CRUD de requisitos y costeo
// estimado (cantidad × precio unitario vigente de cada ingrediente).
// Las recetas no consumen stock: las bajas se registran como movimientos.
type RecipeUseCase struct {
	repo           repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository, ingredientRepo repository.IngredientRepository) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, ingredientRepo: ingredientRepo}
}

// Create crea una receta con sus requisitos.
func (uc *RecipeUseCase) Create(in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	recipe := &entity.Recipe{
		Name:        in.Name,
		Description: in.Description,
		Items:       make([]entity.RecipeIngredient, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		if !item.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		ing, err := uc.ingredientRepo.GetByID(item.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		recipe.Items = append(recipe.Items, entity.RecipeIngredient{
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
		})
	}
	if err := uc.repo.Create(recipe); err != nil {
		return nil, err
	}
	return uc.toResponse(recipe)
}

// GetByID obtiene una receta con su costeo.
func (uc *RecipeUseCase) GetByID(id int64) (*dto.RecipeResponse, error) {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}
	return uc.toResponse(recipe)
}

// Update edita nombre/descripción y, si Items viene, reemplaza el conjunto
// completo de requisitos.
func (uc *RecipeUseCase) Update(id int64, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		recipe.Name = *in.Name
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if err := uc.repo.Update(recipe); err != nil {
		return nil, err
	}

	if in.Items != nil {
		items := make([]entity.RecipeIngredient, 0, len(in.Items))
		for _, item := range in.Items {
			if !item.Quantity.IsPositive() {
				return nil, domain.ErrInvalidInput
			}
			ing, err := uc.ingredientRepo.GetByID(item.IngredientID)
			if err != nil {
				return nil, err
			}
			if ing == nil {
				return nil, domain.ErrNotFound
			}
			items = append(items, entity.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: item.IngredientID,
				Quantity:     item.Quantity,
			})
		}
		if err := uc.repo.ReplaceItems(recipe.ID, items); err != nil {
			return nil, err
		}
		recipe.Items = items
	}
	return uc.toResponse(recipe)
}

// List lista recetas con paginación y costeo por receta.
func (uc *RecipeUseCase) List(limit, offset int) (*dto.RecipeListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.RecipeListResponse{
		Items: make([]dto.RecipeResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(list)},
	}
	for _, recipe := range list {
		resp, err := uc.toResponse(recipe)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *resp)
	}
	return out, nil
}

// toResponse costea cada requisito con el precio unitario vigente del
// ingrediente. Sin precio registrado, el costo del requisito es cero.
func (uc *RecipeUseCase) toResponse(recipe *entity.Recipe) (*dto.RecipeResponse, error) {
	out := &dto.RecipeResponse{
		ID:            recipe.ID,
		Name:          recipe.Name,
		Description:   recipe.Description,
		Items:         make([]dto.RecipeItemResponse, 0, len(recipe.Items)),
		EstimatedCost: decimal.Zero,
	}
	for _, item := range recipe.Items {
		cost := decimal.Zero
		ing, err := uc.ingredientRepo.GetByID(item.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing != nil && ing.UnitPrice != nil {
			cost = item.Quantity.Mul(*ing.UnitPrice)
		}
		out.Items = append(out.Items, dto.RecipeItemResponse{
			ID:            item.ID,
			IngredientID:  item.IngredientID,
			Quantity:      item.Quantity,
			EstimatedCost: cost,
		})
		out.EstimatedCost = out.EstimatedCost.Add(cost)
	}
	return out, nil
}
