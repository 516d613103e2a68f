package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del puerto RecipeRepository sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de persistencia para recetas.
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create inserta la receta con sus requisitos y asigna los IDs.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx,
		`INSERT INTO recipes (name, description) VALUES ($1, $2) RETURNING id`,
		recipe.Name, recipe.Description,
	).Scan(&recipe.ID)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	for i := range recipe.Items {
		item := &recipe.Items[i]
		item.RecipeID = recipe.ID
		err := r.q.QueryRow(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
			item.RecipeID, item.IngredientID, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una receta con sus requisitos. Devuelve (nil, nil) si no existe.
func (r *RecipeRepo) GetByID(id int64) (*entity.Recipe, error) {
	var recipe entity.Recipe
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description FROM recipes WHERE id = $1`, id,
	).Scan(&recipe.ID, &recipe.Name, &recipe.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if err := r.loadItems(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepo) loadItems(recipe *entity.Recipe) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, recipe_id, ingredient_id, quantity FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY id`,
		recipe.ID,
	)
	if err != nil {
		return fmt.Errorf("load recipe ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.RecipeIngredient
		if err := rows.Scan(&item.ID, &item.RecipeID, &item.IngredientID, &item.Quantity); err != nil {
			return fmt.Errorf("scan recipe ingredient: %w", err)
		}
		recipe.Items = append(recipe.Items, item)
	}
	return rows.Err()
}

// Update actualiza nombre y descripción.
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE recipes SET name = $2, description = $3 WHERE id = $1`,
		recipe.ID, recipe.Name, recipe.Description,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// ReplaceItems reemplaza el conjunto completo de requisitos de la receta.
func (r *RecipeRepo) ReplaceItems(recipeID int64, items []entity.RecipeIngredient) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("clear recipe ingredients: %w", err)
	}
	for i := range items {
		item := &items[i]
		item.RecipeID = recipeID
		err := r.q.QueryRow(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
			item.RecipeID, item.IngredientID, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}
	return nil
}

// List lista recetas con paginación, requisitos incluidos.
func (r *RecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description FROM recipes ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	var list []*entity.Recipe
	for rows.Next() {
		var recipe entity.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &recipe)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, recipe := range list {
		if err := r.loadItems(recipe); err != nil {
			return nil, err
		}
	}
	return list, nil
}
