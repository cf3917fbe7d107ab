package capture

import (
	"image"

	"github.com/ayusman/kalari/internal/motion"
	"gocv.io/x/gocv"
)

// Downsample shrinks a captured frame to the estimator grid and converts it
// to a plain RGB buffer, keeping gocv confined to this package. A nil or
// empty Mat (camera still warming up) yields nil, which the estimator
// treats as a degenerate frame and skips.
func Downsample(mat *gocv.Mat) *motion.Frame {
	if mat == nil || mat.Empty() {
		return nil
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(*mat, &resized, image.Pt(GridWidth, GridHeight), 0, 0, gocv.InterpolationArea)

	rgb := gocv.NewMat()
	defer rgb.Close()
	if resized.Channels() == 3 {
		gocv.CvtColor(resized, &rgb, gocv.ColorBGRToRGB)
	} else {
		gocv.CvtColor(resized, &rgb, gocv.ColorGrayToBGR)
	}

	data := rgb.ToBytes()
	frame := motion.NewFrame(GridWidth, GridHeight)
	if len(data) != len(frame.Pix) {
		return nil
	}
	copy(frame.Pix, data)
	return frame
}
