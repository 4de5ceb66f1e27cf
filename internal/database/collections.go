package database

// Collection names per record type. The mapping is explicit so renaming a Go
// type never silently moves its data to a different collection.
const (
	NewsCollection    = "newsitem"
	UserCollection    = "user"
	ProductCollection = "product"
)
