// Package theme 管理页面明暗主题，并把主题变化广播给订阅者
//
// 订阅者（例如点击火花的颜色）通过 Subscribe 注册，主题切换时按注册顺序收到新主题。
package theme

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/aurora/pkg/config"
	"github.com/decker502/aurora/pkg/utils"
)

// Scheme 明暗主题
type Scheme int

const (
	Dark Scheme = iota
	Light
)

// String 返回主题名
func (s Scheme) String() string {
	if s == Light {
		return "light"
	}
	return "dark"
}

// ParseScheme 解析主题名（不区分大小写）
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("未知主题: %q", name)
}

// Palette 主题配色
type Palette struct {
	darkSpark       string
	lightSpark      string
	darkBackground  color.Color
	lightBackground color.Color
}

// NewPalette 根据配置创建配色
func NewPalette(cfg config.ThemeConfig) (*Palette, error) {
	for _, s := range []string{cfg.DarkSparkColor, cfg.LightSparkColor} {
		if _, err := utils.ParseColor(s); err != nil {
			return nil, fmt.Errorf("火花颜色: %w", err)
		}
	}
	dark, err := utils.ParseColor(cfg.DarkBackground)
	if err != nil {
		return nil, fmt.Errorf("暗色背景: %w", err)
	}
	light, err := utils.ParseColor(cfg.LightBackground)
	if err != nil {
		return nil, fmt.Errorf("亮色背景: %w", err)
	}

	return &Palette{
		darkSpark:       cfg.DarkSparkColor,
		lightSpark:      cfg.LightSparkColor,
		darkBackground:  dark,
		lightBackground: light,
	}, nil
}

// SparkColor 返回主题对应的火花颜色字符串
func (p *Palette) SparkColor(s Scheme) string {
	if s == Light {
		return p.lightSpark
	}
	return p.darkSpark
}

// Background 返回主题对应的页面背景色
func (p *Palette) Background(s Scheme) color.Color {
	if s == Light {
		return p.lightBackground
	}
	return p.darkBackground
}

// Switch 主题开关
type Switch struct {
	scheme      Scheme
	subscribers []func(Scheme)
}

// NewSwitch 创建初始主题为 initial 的开关
func NewSwitch(initial Scheme) *Switch {
	return &Switch{scheme: initial}
}

// Scheme 返回当前主题
func (sw *Switch) Scheme() Scheme {
	return sw.scheme
}

// Subscribe 注册主题变化回调
func (sw *Switch) Subscribe(fn func(Scheme)) {
	sw.subscribers = append(sw.subscribers, fn)
}

// Set 切换到指定主题，主题未变化时不通知
func (sw *Switch) Set(s Scheme) {
	if s == sw.scheme {
		return
	}
	sw.scheme = s
	log.Printf("[Theme] -> %s", s)
	for _, fn := range sw.subscribers {
		fn(s)
	}
}

// Toggle 在明暗主题之间切换，返回新主题
func (sw *Switch) Toggle() Scheme {
	if sw.scheme == Dark {
		sw.Set(Light)
	} else {
		sw.Set(Dark)
	}
	return sw.scheme
}
