package entity

// Sector representa un setor del restaurante (cozinha, bar, confeitaria...).
// Referencia opcional en movimientos y órdenes de compra.
type Sector struct {
	ID   int64
	Name string
}
