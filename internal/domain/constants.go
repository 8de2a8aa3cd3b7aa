package domain

// Параметры восприятия
const (
	VisionRadius = 10
)

// Сущности
const (
	// EggLifetime - сколько ходов живёт яйцо
	EggLifetime uint8 = 255
)

// Камера
const (
	DefaultCameraZoom float32 = 64
	CameraZoomStep    float32 = 1.01
	CameraPanSpeed    float32 = 10
)
