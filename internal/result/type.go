package result

type AddResultInput struct {
	EventID     string
	AthleteID   string
	AthleteName string
	Country     string
	Time        string
	Position    int
	Lane        int
	Splits      []string
	RecordType  string
	Status      string
}

// UpdateResultInput carries partial updates; nil fields are left unchanged.
type UpdateResultInput struct {
	ID         string
	Time       *string
	Position   *int
	Lane       *int
	Splits     []string
	RecordType *string
	Status     *string
}
