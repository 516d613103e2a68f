package repository

import "github.com/jhoicas/restaurante-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para recetas y sus
// requisitos de ingredientes (lectura/costeo; sin consumo de stock).
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id int64) (*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
	// ReplaceItems reemplaza el conjunto de requisitos de la receta.
	ReplaceItems(recipeID int64, items []entity.RecipeIngredient) error
	List(limit, offset int) ([]*entity.Recipe, error)
}
