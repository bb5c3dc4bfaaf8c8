package config

// 窗口与挂载点布局常量
// 挂载点的位置以视口比例表示，窗口缩放时元素随之缩放

const (
	// WindowWidth 默认窗口宽度（像素）
	WindowWidth = 1280

	// WindowHeight 默认窗口高度（像素）
	WindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Aurora"

	// AuroraContainerID 极光背景容器的默认元素 ID
	AuroraContainerID = "aurora-container"

	// SparkCanvasID 点击火花画布的默认元素 ID
	SparkCanvasID = "click-spark-canvas"

	// AuroraContainerHeightRatio 极光容器高度占视口高度的比例（页面首屏区域）
	AuroraContainerHeightRatio = 0.75
)
