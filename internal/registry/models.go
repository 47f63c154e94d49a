package registry

import "time"

// Binding links an externally-owned account to its derived smart account on
// one chain. Addresses are stored lowercased; the (eoa_address, chain_id)
// pair is the natural key.
type Binding struct {
	ID                  uint      `gorm:"primaryKey"`
	EOAAddress          string    `gorm:"column:eoa_address;size:42;not null;uniqueIndex:idx_eoa_chain"`
	SmartAccountAddress string    `gorm:"size:42;not null"`
	IsDeployed          bool      `gorm:"not null;default:false"`
	ChainID             uint64    `gorm:"not null;uniqueIndex:idx_eoa_chain"`
	CreatedAt           time.Time `gorm:"not null"`
	LinkedAt            time.Time `gorm:"not null"`
}

// BindingUpdate is a partial update of a stored binding. Nil fields are left
// untouched. IsDeployed may only flip false to true.
type BindingUpdate struct {
	IsDeployed *bool
	LinkedAt   *time.Time
}
