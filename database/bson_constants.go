package database

// Champs et opérateurs MongoDB utilisés par MongoStore
const (
	BSONID          = "_id"
	BSONItems       = "items"
	BSONSetOnInsert = "$setOnInsert"

	// Collection qui contient un document par collection logique
	documentsCollection = "documents"
)
