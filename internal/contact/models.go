package contact

// CollectionName is the collection contact form submissions are written to.
const CollectionName = "contactmessage"

// ContactMessage is the body accepted by POST /contact. It is validated once
// on binding, persisted once, then dropped.
type ContactMessage struct {
	Name    string  `json:"name" bson:"name" binding:"required,max=120"`
	Email   string  `json:"email" bson:"email" binding:"required,email,max=254"`
	Message string  `json:"message" bson:"message" binding:"required,max=5000"`
	Subject *string `json:"subject,omitempty" bson:"subject,omitempty" binding:"omitempty,max=200"`
	Phone   *string `json:"phone,omitempty" bson:"phone,omitempty" binding:"omitempty,max=40"`
}
