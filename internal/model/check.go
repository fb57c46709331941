package model

// IsInCheck reports whether the king of color is attacked on b. A board
// without that king counts as check so that malformed positions never pass
// legality filtering. Nothing is cached; b is not modified.
func (b *Board) IsInCheck(color PlayerColor) bool {
	king, ok := b.KingPosition(color)
	if !ok {
		return true
	}
	return b.isSquareAttacked(color.Opponent(), king)
}

func (b *Board) isSquareAttacked(attackingColor PlayerColor, position Position) bool {
	// Pawns attack one row ahead in their own direction, so look one row
	// behind the target from the attacker's point of view.
	pawnRow := position.Y - attackingColor.pawnDirection()
	for _, dx := range []int{-1, 1} {
		if b.holds(Position{X: position.X + dx, Y: pawnRow}, attackingColor, Pawn) {
			return true
		}
	}
	for _, dir := range knightDirs {
		if b.holds(position.add(dir), attackingColor, Knight) {
			return true
		}
	}
	if b.rayAttacked(attackingColor, position, bishopDirs, Bishop) {
		return true
	}
	if b.rayAttacked(attackingColor, position, rookDirs, Rook) {
		return true
	}
	for _, dir := range kingDirs {
		if b.holds(position.add(dir), attackingColor, King) {
			return true
		}
	}
	return false
}

// rayAttacked walks each direction to the first occupied square and checks it
// for an enemy slider of pieceType or a queen.
func (b *Board) rayAttacked(attackingColor PlayerColor, position Position, dirs []Position, pieceType PieceType) bool {
	for _, dir := range dirs {
		targetPos := position.add(dir)
		for boundaryCheck(targetPos) {
			occupant := b.At(targetPos)
			if !occupant.IsEmpty() {
				if occupant.Color == attackingColor && (occupant.Type == pieceType || occupant.Type == Queen) {
					return true
				}
				break
			}
			targetPos = targetPos.add(dir)
		}
	}
	return false
}

func (b *Board) holds(position Position, color PlayerColor, pieceType PieceType) bool {
	if !boundaryCheck(position) {
		return false
	}
	piece := b.At(position)
	return piece.Type == pieceType && piece.Color == color
}
