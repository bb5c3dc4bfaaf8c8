package systems

import (
	"image/color"
	"testing"
)

// TestEbitenCanvas_Resize 0 尺寸被忽略，尺寸不变时保留原缓冲
func TestEbitenCanvas_Resize(t *testing.T) {
	c, ok := NewEbitenCanvas().(*EbitenCanvas)
	if !ok {
		t.Fatal("NewEbitenCanvas() 应返回 *EbitenCanvas")
	}

	// 未分配时各操作都是空操作
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("初始尺寸 = %dx%d, want 0x0", w, h)
	}
	c.Clear()
	c.StrokeLine(0, 0, 10, 10, 2, color.White)

	c.Resize(0, 100)
	if c.Image() != nil {
		t.Error("0 尺寸不应分配缓冲")
	}

	c.Resize(200, 100)
	if w, h := c.Size(); w != 200 || h != 100 {
		t.Errorf("Size() = %dx%d, want 200x100", w, h)
	}
	img := c.Image()

	c.Resize(200, 100)
	if c.Image() != img {
		t.Error("尺寸不变时不应重新分配缓冲")
	}
	c.Resize(200, 0)
	if c.Image() != img {
		t.Error("0 尺寸不应替换已有缓冲")
	}

	c.Resize(320, 240)
	if w, h := c.Size(); w != 320 || h != 240 {
		t.Errorf("Size() = %dx%d, want 320x240", w, h)
	}
	if c.Image() == img {
		t.Error("尺寸变化后应重新分配缓冲")
	}
}
