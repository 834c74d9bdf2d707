package database

// GameResult is one finished game. Players 1 and 3 form team 1.
type GameResult struct {
	ID            string `json:"id"`
	CreatedAt     string `json:"created_at"`
	Player1       string `json:"player1"`
	Player2       string `json:"player2"`
	Player3       string `json:"player3"`
	Player4       string `json:"player4"`
	Team1Score    int    `json:"team1_score"`
	Team2Score    int    `json:"team2_score"`
	Winner        int    `json:"winner"`
	Rounds        int    `json:"rounds"`
	DealingMethod string `json:"dealing_method"`
	Difficulty    string `json:"difficulty"`
}
