package models

// Table represents a bookable restaurant table.
//
// The document store keys tables by the string form of ID; the public shape
// exposes the numeric id. MinOrder is optional and omitted when absent.
type Table struct {
	ID       int  `json:"id"`
	Number   int  `json:"number"`
	Places   int  `json:"places"`
	IsVip    bool `json:"isVip"`
	MinOrder *int `json:"minOrder,omitempty"`
}

// TableRecord is the persisted form of a Table, keyed by string id.
type TableRecord struct {
	ID       string `dynamodbav:"id" json:"id"`
	Number   int    `dynamodbav:"number" json:"number"`
	Places   int    `dynamodbav:"places" json:"places"`
	IsVip    bool   `dynamodbav:"isVip" json:"isVip"`
	MinOrder *int   `dynamodbav:"minOrder,omitempty" json:"minOrder,omitempty"`
}

// CreateTableRequest is the request body for POST /tables.
//
// Required fields are pointers so that absence can be distinguished from the
// zero value during validation.
type CreateTableRequest struct {
	ID       *int  `json:"id"`
	Number   *int  `json:"number"`
	Places   *int  `json:"places"`
	IsVip    *bool `json:"isVip"`
	MinOrder *int  `json:"minOrder"`
}

// TableListResponse wraps the projected table list for GET /tables.
type TableListResponse struct {
	Tables []Table `json:"tables"`
}

// CreateTableResponse echoes the caller-supplied id for POST /tables.
type CreateTableResponse struct {
	ID int `json:"id"`
}
