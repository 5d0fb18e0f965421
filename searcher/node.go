package searcher

import "holdem/game"

// Node is one hypothesized world: an opponent hole pair and a completed board
type Node struct {
	OppHole   []game.Card
	FullBoard []game.Card
	visits    int
	wins      float64
}

func newNode(oppHole, fullBoard []game.Card) *Node {
	return &Node{
		OppHole:   oppHole,
		FullBoard: fullBoard,
	}
}

func (n *Node) Visits() int {
	return n.visits
}

func (n *Node) Wins() int {
	return int(n.wins)
}

func (n *Node) score(policy *ucb1) float64 {
	return policy.evaluate(n.wins, float64(n.visits))
}

func (n *Node) backup(reward float64) {
	n.wins += reward
	n.visits++
}
