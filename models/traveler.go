package models

// TravelerInfo holds one participant's record. ParticipantNumber is 1-based and
// always matches the traveler's position in the roster.
type TravelerInfo struct {
	ParticipantNumber int    `bson:"participant_number" json:"participantNumber"`
	IsLeadTraveler    bool   `bson:"is_lead_traveler" json:"isLeadTraveler"`
	FullName          string `bson:"full_name" json:"fullName"`
	Email             string `bson:"email" json:"email"`
	Phone             string `bson:"phone" json:"phone"`
	GovernmentID      string `bson:"government_id" json:"governmentId"`
	Nationality       string `bson:"nationality" json:"nationality"`
	DateOfBirth       string `bson:"date_of_birth" json:"dateOfBirth"` // "YYYY-MM-DD"
	Gender            string `bson:"gender" json:"gender"`

	// Optional fields.
	PassportExpiry string `bson:"passport_expiry,omitempty" json:"passportExpiry,omitempty"`
	Dietary        string `bson:"dietary,omitempty" json:"dietary,omitempty"`
	Medical        string `bson:"medical,omitempty" json:"medical,omitempty"`
	SpecialNeeds   string `bson:"special_needs,omitempty" json:"specialNeeds,omitempty"`
}

// TravelerUpdate carries a partial edit of a TravelerInfo. Nil fields are left
// untouched by the merge.
type TravelerUpdate struct {
	FullName       *string `json:"fullName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	GovernmentID   *string `json:"governmentId,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	PassportExpiry *string `json:"passportExpiry,omitempty"`
	Dietary        *string `json:"dietary,omitempty"`
	Medical        *string `json:"medical,omitempty"`
	SpecialNeeds   *string `json:"specialNeeds,omitempty"`
}
