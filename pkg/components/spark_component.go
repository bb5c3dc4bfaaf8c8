package components

import "time"

// SparkComponent 点击火花
// 每次点击生成一组火花，同组火花共享原点和生成时间，只有角度不同
type SparkComponent struct {
	OriginX   float64       // 点击位置 X（画布像素）
	OriginY   float64       // 点击位置 Y（画布像素）
	Angle     float64       // 飞散方向（弧度）
	SpawnTime time.Duration // 生成时刻（frame.Clock 时间）
}
