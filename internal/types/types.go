package types

// EntityID identifies an entity in the ECS.
type EntityID int
