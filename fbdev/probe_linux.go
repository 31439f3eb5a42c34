//go:build linux

package fbdev

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Frame buffer ioctl requests from <linux/fb.h>.
const (
	fbiogetVScreenInfo = 0x4600
	fbiogetFScreenInfo = 0x4602
)

// fbBitfield mirrors struct fb_bitfield.
type fbBitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          fbBitfield
	Green        fbBitfield
	Blue         fbBitfield
	Transp       fbBitfield
	Nonstd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	Pixclock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	Vmode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// fixScreenInfo mirrors struct fb_fix_screeninfo. The unsigned long
// fields are uintptr so the layout holds on 32-bit ARM as well.
type fixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

func ioctl(fd uintptr, request uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Probe queries the variable and fixed screen info of an open device.
// If either query fails it returns Fallback and false. Probe never fails:
// regular files and other non-hardware surfaces get the built-in profile.
func Probe(f *os.File) (Info, bool) {
	fd := f.Fd()

	var vinfo varScreenInfo
	if err := ioctl(fd, fbiogetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		return Fallback(), false
	}

	var finfo fixScreenInfo
	if err := ioctl(fd, fbiogetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		return Fallback(), false
	}

	return Info{
		Width:        int(vinfo.XRes),
		Height:       int(vinfo.YRes),
		BitsPerPixel: int(vinfo.BitsPerPixel),
		LineLength:   int(finfo.LineLength),
		BufferSize:   int(finfo.SmemLen),
	}, true
}
