package model

var (
	rookDirs   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	bishopDirs = []Position{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	knightDirs = []Position{{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: 1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: -1, Y: -2}}
	kingDirs   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	queenDirs  = append(append([]Position{}, bishopDirs...), rookDirs...)
)

// PseudoMoves returns every move the piece on from could make by its
// movement pattern, ignoring whether its own king is left in check.
// An empty or out of bounds square yields no moves.
func (b *Board) PseudoMoves(from Position) []Move {
	if !boundaryCheck(from) {
		return []Move{}
	}
	piece := b.At(from)
	switch piece.Type {
	case Pawn:
		return b.getPsuedoPawnMoves(from, piece)
	case Knight:
		return b.getPsuedoStepMoves(from, piece, knightDirs)
	case Bishop:
		return b.getPsuedoSlidingMoves(from, piece, bishopDirs)
	case Rook:
		return b.getPsuedoSlidingMoves(from, piece, rookDirs)
	case Queen:
		return b.getPsuedoSlidingMoves(from, piece, queenDirs)
	case King:
		return b.getPsuedoStepMoves(from, piece, kingDirs)
	default:
		return []Move{}
	}
}

// LegalMoves filters PseudoMoves down to the moves that do not leave the
// mover's king in check. Each candidate is played on a copy of the board.
// Whose turn it is does not matter here.
func (b *Board) LegalMoves(from Position) []Move {
	legalMoves := []Move{}
	if !boundaryCheck(from) {
		return legalMoves
	}
	color := b.At(from).Color
	for _, move := range b.PseudoMoves(from) {
		next := b.simulate(move)
		if !next.IsInCheck(color) {
			legalMoves = append(legalMoves, move)
		}
	}
	return legalMoves
}

// LegalMovesForColor collects the legal moves of every piece of color.
func (b *Board) LegalMovesForColor(color PlayerColor) []Move {
	legalMoves := []Move{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !b[y][x].IsEmpty() && b[y][x].Color == color {
				legalMoves = append(legalMoves, b.LegalMoves(Position{X: x, Y: y})...)
			}
		}
	}
	return legalMoves
}

func (b *Board) simulate(move Move) Board {
	next := *b
	next.movePiece(move.From, move.To)
	return next
}

// movePiece relocates the piece on from to to, promoting a pawn that reaches
// the far row to a queen. It returns the piece that stood on to.
func (b *Board) movePiece(from, to Position) Piece {
	piece := b.At(from)
	captured := b.At(to)
	b.set(to, piece)
	b.set(from, Piece{})
	if promotes(piece, to) {
		b.set(to, Piece{Type: Queen, Color: piece.Color})
	}
	return captured
}

func promotes(piece Piece, to Position) bool {
	return piece.Type == Pawn && to.Y == piece.Color.promotionRow()
}

func (b *Board) getPsuedoPawnMoves(from Position, piece Piece) []Move {
	pawnMoves := []Move{}
	dir := piece.Color.pawnDirection()
	// Check move forward 1
	one := Position{X: from.X, Y: from.Y + dir}
	if boundaryCheck(one) && b.At(one).IsEmpty() {
		pawnMoves = append(pawnMoves, Move{From: from, To: one})
		// Check move forward 2 from the start row, both squares must be free
		two := Position{X: from.X, Y: from.Y + dir*2}
		if from.Y == piece.Color.pawnStartRow() && b.At(two).IsEmpty() {
			pawnMoves = append(pawnMoves, Move{From: from, To: two})
		}
	}
	// Check captures left and right
	for _, dx := range []int{-1, 1} {
		target := Position{X: from.X + dx, Y: from.Y + dir}
		if !boundaryCheck(target) {
			continue
		}
		if occupant := b.At(target); !occupant.IsEmpty() && occupant.Color != piece.Color {
			pawnMoves = append(pawnMoves, Move{From: from, To: target, Capture: true})
		}
	}
	return pawnMoves
}

// getPsuedoStepMoves handles the single step pieces, knight and king.
func (b *Board) getPsuedoStepMoves(from Position, piece Piece, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		targetPos := from.add(dir)
		if !boundaryCheck(targetPos) {
			continue
		}
		occupant := b.At(targetPos)
		if occupant.IsEmpty() || occupant.Color != piece.Color {
			moves = append(moves, Move{From: from, To: targetPos, Capture: !occupant.IsEmpty()})
		}
	}
	return moves
}

func (b *Board) getPsuedoSlidingMoves(from Position, piece Piece, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		targetPos := from.add(dir)
		for boundaryCheck(targetPos) {
			occupant := b.At(targetPos)
			if occupant.IsEmpty() {
				moves = append(moves, Move{From: from, To: targetPos})
			} else if occupant.Color != piece.Color {
				moves = append(moves, Move{From: from, To: targetPos, Capture: true})
				break
			} else {
				break
			}
			targetPos = targetPos.add(dir)
		}
	}
	return moves
}
