package shared

// TeamEnum represents the two partnerships.
type TeamEnum int

const (
	NoTeam TeamEnum = 0
	Team1  TeamEnum = 1 // seats 0 and 2
	Team2  TeamEnum = 2 // seats 1 and 3
)

// TeamOf returns the team a seat belongs to.
func TeamOf(seat int) TeamEnum {
	if seat%2 == 0 {
		return Team1
	}
	return Team2
}

// Other returns the opposing team.
func (t TeamEnum) Other() TeamEnum {
	if t == Team1 {
		return Team2
	}
	return Team1
}

// Partner returns the seat across the table.
func Partner(seat int) int {
	return (seat + 2) % 4
}

// TeamScore holds a value per team.
type TeamScore struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

// Add adds points to a team.
func (s *TeamScore) Add(t TeamEnum, points int) {
	switch t {
	case Team1:
		s.Team1 += points
	case Team2:
		s.Team2 += points
	}
}

// Of returns the value of a team.
func (s TeamScore) Of(t TeamEnum) int {
	if t == Team1 {
		return s.Team1
	}
	return s.Team2
}

// Reset sets both teams to 0.
func (s *TeamScore) Reset() {
	s.Team1 = 0
	s.Team2 = 0
}
