package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen general para el dashboard.
type DashboardStatsDTO struct {
	TotalIngredients int                `json:"total_ingredients"`
	TotalSuppliers   int                `json:"total_suppliers"`
	TotalOrders      int                `json:"total_orders"`
	LowStockCount    int                `json:"low_stock_count"`
	StockValue       decimal.Decimal    `json:"stock_value"` // Σ stock_actual × precio_unitario
	RecentMovements  []MovementResponse `json:"recent_movements"`
}
