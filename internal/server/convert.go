package server

import (
	"time"

	"sueca-game/internal/database"
	"sueca-game/internal/game"
	"sueca-game/internal/protocol"
	"sueca-game/internal/shared"
)

// statePayload renders a snapshot for the client at viewer. Only the
// viewer's hand is sent; other seats report their card count.
func statePayload(st game.State, viewer int) protocol.GameStatePayload {
	players := make([]protocol.PlayerInfo, len(st.Players))
	for i, p := range st.Players {
		info := protocol.PlayerInfo{
			ID:       p.ID,
			Name:     p.Name,
			Seat:     p.Seat,
			Position: shared.SeatPositions[p.Seat],
			Team:     p.Team,
			Cards:    len(p.Hand),
		}
		if p.Seat == viewer {
			info.Hand = p.Hand
		}
		players[i] = info
	}

	payload := protocol.GameStatePayload{
		GameID:               st.ID,
		Players:              players,
		CurrentPlayer:        st.CurrentPlayer,
		Dealer:               st.Dealer,
		TrumpSuit:            st.TrumpSuit,
		TrumpCard:            st.TrumpCard,
		Trick:                st.Trick,
		LeadSuit:             st.LeadSuit,
		TrickLeader:          st.TrickLeader,
		Scores:               st.Scores,
		GameScore:            st.GameScore,
		Round:                st.Round,
		IsGameOver:           st.IsGameOver,
		Winner:               st.Winner,
		LastTrickWinner:      st.LastTrickWinner,
		DealingMethod:        string(st.DealingMethod),
		IsFirstTrick:         st.IsFirstTrick,
		WaitingForTrickEnd:   st.WaitingForTrickEnd,
		WaitingForRoundStart: st.WaitingForRoundStart,
		WaitingForRoundEnd:   st.WaitingForRoundEnd,
		WaitingForGameStart:  st.WaitingForGameStart,
		IsPaused:             st.IsPaused,
		NextRoundMultiplier:  st.NextRoundMultiplier,
		TrickNumber:          st.TrickNumber,
		Difficulty:           string(st.Difficulty),
		Abandoned:            st.Abandoned,
	}
	if payload.Trick == nil {
		payload.Trick = []shared.PlayedCard{}
	}
	if r := st.LastRound; r != nil {
		payload.LastRound = &protocol.RoundSummary{
			Round:     r.Round,
			Points:    r.Points,
			Winner:    r.Winner,
			Victories: r.Victories,
			Draw:      r.Draw,
		}
	}
	return payload
}

// resultFromState builds the stored row of a finished game.
func resultFromState(st game.State, now time.Time) database.GameResult {
	return database.GameResult{
		ID:            st.ID,
		CreatedAt:     now.UTC().Format(time.RFC3339),
		Player1:       st.Players[0].Name,
		Player2:       st.Players[1].Name,
		Player3:       st.Players[2].Name,
		Player4:       st.Players[3].Name,
		Team1Score:    st.GameScore.Team1,
		Team2Score:    st.GameScore.Team2,
		Winner:        int(st.Winner),
		Rounds:        st.Round,
		DealingMethod: string(st.DealingMethod),
		Difficulty:    string(st.Difficulty),
	}
}
