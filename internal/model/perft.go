package model

// Perft counts the leaf nodes of the legal move tree below board at depth.
// Promotions only ever produce a queen, so counts differ from full chess
// rules once promotions, castling or en passant come into play.
func Perft(board Board, toMove PlayerColor, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.LegalMovesForColor(toMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		nodes += Perft(board.simulate(move), toMove.Opponent(), depth-1)
	}
	return nodes
}

// PerftDivide reports the node count below each root move.
func PerftDivide(board Board, toMove PlayerColor, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, move := range board.LegalMovesForColor(toMove) {
		div[move] = Perft(board.simulate(move), toMove.Opponent(), depth-1)
	}
	return div
}
