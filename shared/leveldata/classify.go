package leveldata

// Classify maps a tile code to its kind. Unknown codes are empty.
func Classify(code int) Kind {
	switch {
	case code >= 0 && code <= 14:
		return KindObstacle
	case code == 15 || code == 16:
		return KindHazard
	}
	switch code {
	case 17:
		return KindLevelEnd
	case 18:
		return KindPlayer
	case 19, 20, 21:
		return KindEnemy
	case 22, 23, 24, 27:
		return KindPickup
	case 25:
		return KindRed
	case 26:
		return KindPurple
	case 28:
		return KindCheckpoint
	case 29:
		return KindOrange
	}
	return KindEmpty
}

func enemyKind(code int) EnemyKind {
	switch code {
	case 20:
		return EnemyPinkStar
	case 21:
		return EnemySeashell
	}
	return EnemyFierceTooth
}

func pickupKind(code int) PickupKind {
	switch code {
	case 23:
		return PickupAmmoGem
	case 24:
		return PickupHealthGem
	case 27:
		return PickupGrenadeBox
	}
	return PickupCoin
}
