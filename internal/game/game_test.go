package game

import (
	"blackjack/internal/console"
	"blackjack/internal/prompt"
	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"
	"bytes"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"io"
	"strings"
	"testing"
)

func createTestGame(input, cards string) (*Game, *bytes.Buffer, *deck.StackedSource) {
	out := &bytes.Buffer{}
	logger, _ := test.NewNullLogger()
	src := deck.NewStackedSource(deck.CardsFromString(cards))
	g := New(prompt.New(strings.NewReader(input), out), console.New(out), src, blackjack.DefaultOptions(), logger)
	return g, out, src
}

func plain(buf *bytes.Buffer) string {
	return pterm.RemoveColorFromString(buf.String())
}

func TestGame_PlaySession_loss(t *testing.T) {
	a := assert.New(t)

	// player stands on 18, dealer draws to 20
	g, out, src := createTestGame("100\n10\nn\nn\n", "10h,8c,9s,5d,6h")
	session, err := g.PlaySession()
	a.NoError(err)
	a.Equal(90, session.Chips)
	a.Equal(0, src.CardsLeft())

	text := plain(out)
	a.Contains(text, "Betting 10 chips, you now have 90 chips.")
	a.Contains(text, "Dealer wins!")
	a.Contains(text, "You now have 90 chips. Would you like to play another round? Y/N")
	a.True(strings.HasSuffix(text, "You finished with 90 chips!\n"))
}

func TestGame_PlaySession_win(t *testing.T) {
	a := assert.New(t)

	// player stands on A-K, dealer busts on the forced draw
	g, out, _ := createTestGame("100\n10\nn\nn\n", "As,Kh,10c,7d,9s")
	session, err := g.PlaySession()
	a.NoError(err)
	a.Equal(110, session.Chips)
	a.Contains(plain(out), "Dealer busted. You win!")
}

func TestGame_PlaySession_draw(t *testing.T) {
	g, _, _ := createTestGame("100\n10\nn\nn\n", "10h,9c,9s,5d,5h")
	session, err := g.PlaySession()
	assert.NoError(t, err)
	assert.Equal(t, 100, session.Chips)
}

func TestGame_PlaySession_multipleRounds(t *testing.T) {
	a := assert.New(t)

	// round one: player hits to 21 and wins, round two: player busts
	cards := "10h,6c,9s,5d,5h,3c," + "10h,6c,9s,5d,Kh,3c"
	g, out, src := createTestGame("100\n10\ny\ny\n20\ny\nn\n", cards)
	session, err := g.PlaySession()
	a.NoError(err)
	a.Equal(90, session.Chips)
	a.Equal(0, src.CardsLeft())

	text := plain(out)
	a.Contains(text, "You reached 21!")
	a.Contains(text, "You now have 110 chips.")
	a.Contains(text, "Player busts!")
	a.Contains(text, "Player busted. You lost!")
	a.Contains(text, "You finished with 90 chips!")
}

func TestGame_PlaySession_broke(t *testing.T) {
	a := assert.New(t)
	g, out, _ := createTestGame("10\n10\nn\n", "10h,8c,9s,5d,6h")
	session, err := g.PlaySession()
	a.NoError(err)
	a.Equal(0, session.Chips)

	text := plain(out)
	a.True(strings.HasSuffix(text, "You're all outta chips!\n"))
	a.NotContains(text, "another round")
}

func TestGame_PlaySession_badInput(t *testing.T) {
	a := assert.New(t)
	g, out, _ := createTestGame("lots\n100\nten\n10\nmaybe\nn\nn\n", "10h,8c,9s,5d,6h")
	session, err := g.PlaySession()
	a.NoError(err)
	a.Equal(90, session.Chips)

	text := plain(out)
	a.Equal(2, strings.Count(text, "Please enter a positive integer value!"))
	a.Equal(1, strings.Count(text, "Please enter y or n"))
}

func TestGame_PlaySession_EOF(t *testing.T) {
	a := assert.New(t)
	g, _, _ := createTestGame("100\n10\n", "10h,8c,9s,5d,6h")
	session, err := g.PlaySession()
	a.Equal(io.EOF, err)
	a.Equal(90, session.Chips)
}

func TestGame_Run(t *testing.T) {
	a := assert.New(t)
	g, out, _ := createTestGame("y\n100\n10\nn\nn\nn\n", "10h,8c,9s,5d,6h")
	a.NoError(g.Run())

	text := plain(out)
	a.True(strings.HasPrefix(text, "Would you like to play a game of blackjack? Y/N\nHow many chips would you like to start off?\n"))
	a.Contains(text, "You finished with 90 chips!\nWould you like to play another game? Y/N\n")
	a.True(strings.HasSuffix(text, "Alright, see you later!\n"))
}

func TestGame_Run_decline(t *testing.T) {
	a := assert.New(t)
	g, out, _ := createTestGame("x\nn\n", "")
	a.NoError(g.Run())
	a.Equal("Would you like to play a game of blackjack? Y/N\nPlease enter y or n\nAlright, see you later!\n", plain(out))
}

func TestGame_Run_twoGames(t *testing.T) {
	a := assert.New(t)
	cards := "10h,8c,9s,5d,6h," + "As,Kh,10c,7d,9s"
	g, out, src := createTestGame("y\n100\n10\nn\nn\ny\n50\n5\nn\nn\nn\n", cards)
	a.NoError(g.Run())
	a.Equal(0, src.CardsLeft())

	text := plain(out)
	a.Contains(text, "You finished with 90 chips!")
	a.Contains(text, "You finished with 55 chips!")
}
