//go:build darwin || linux

// Dynamic loading of libndi via purego.
//
// The NDI runtime is loaded once, lazily, on the first call that needs it.
//
// Library locations checked (in order):
//   - NDI_LIB_PATH environment variable (full path to the library)
//   - NDILIB_REDIST_FOLDER environment variable (directory, the NDI
//     redistributable convention)
//   - directory of the running executable
//   - system library paths

package ndi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	ndiOnce    sync.Once
	ndiHandle  uintptr
	ndiLoadErr error
)

// libndi function pointers
var (
	ndiLibInitialize func() bool
	ndiLibDestroy    func()
	ndiLibVersion    func() uintptr

	ndiFindCreateV2          func(settings uintptr) uintptr
	ndiFindDestroy           func(finder uintptr)
	ndiFindWaitForSources    func(finder uintptr, timeoutMs uint32) bool
	ndiFindGetCurrentSources func(finder uintptr, numSources uintptr) uintptr

	ndiRecvCreateV3     func(settings uintptr) uintptr
	ndiRecvDestroy      func(recv uintptr)
	ndiRecvConnect      func(recv uintptr, source uintptr)
	ndiRecvCaptureV3    func(recv, video, audio, metadata uintptr, timeoutMs uint32) int32
	ndiRecvFreeVideoV2  func(recv, frame uintptr)
	ndiRecvFreeAudioV3  func(recv, frame uintptr)
	ndiRecvFreeMetadata func(recv, frame uintptr)

	ndiSendCreate      func(settings uintptr) uintptr
	ndiSendDestroy     func(send uintptr)
	ndiSendSendVideoV2 func(send, frame uintptr)
	ndiSendSendAudioV3 func(send, frame uintptr)
)

// loadNDI loads libndi and resolves all symbols.
func loadNDI() error {
	ndiOnce.Do(func() {
		ndiLoadErr = loadNDILib()
	})
	return ndiLoadErr
}

func loadNDILib() error {
	paths := getNDILibPaths()

	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			ndiHandle = handle
			loadNDISymbols()
			return nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("failed to load libndi: %w", lastErr)
	}
	return errors.New("libndi not found in any standard location")
}

func getNDILibPaths() []string {
	var paths []string

	libName := "libndi.so.6"
	if runtime.GOOS == "darwin" {
		libName = "libndi.dylib"
	}

	// Environment variable overrides
	if envPath := os.Getenv("NDI_LIB_PATH"); envPath != "" {
		paths = append(paths, envPath)
	}
	if envPath := os.Getenv("NDILIB_REDIST_FOLDER"); envPath != "" {
		paths = append(paths, filepath.Join(envPath, libName))
	}

	// Next to the running executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, libName),
			filepath.Join(exeDir, "..", "lib", libName),
		)
	}

	// System paths
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"libndi.dylib",
			"/usr/local/lib/libndi.dylib",
			"/opt/homebrew/lib/libndi.dylib",
			"/Library/NDI SDK for Apple/lib/macOS/libndi.dylib",
		)
	case "linux":
		paths = append(paths,
			"libndi.so.6",
			"libndi.so.5",
			"libndi.so",
			"/usr/local/lib/libndi.so",
			"/usr/lib/libndi.so",
		)
	}

	return paths
}

func loadNDISymbols() {
	// Runtime lifecycle
	purego.RegisterLibFunc(&ndiLibInitialize, ndiHandle, "NDIlib_initialize")
	purego.RegisterLibFunc(&ndiLibDestroy, ndiHandle, "NDIlib_destroy")
	purego.RegisterLibFunc(&ndiLibVersion, ndiHandle, "NDIlib_version")

	// Finder
	purego.RegisterLibFunc(&ndiFindCreateV2, ndiHandle, "NDIlib_find_create_v2")
	purego.RegisterLibFunc(&ndiFindDestroy, ndiHandle, "NDIlib_find_destroy")
	purego.RegisterLibFunc(&ndiFindWaitForSources, ndiHandle, "NDIlib_find_wait_for_sources")
	purego.RegisterLibFunc(&ndiFindGetCurrentSources, ndiHandle, "NDIlib_find_get_current_sources")

	// Receiver
	purego.RegisterLibFunc(&ndiRecvCreateV3, ndiHandle, "NDIlib_recv_create_v3")
	purego.RegisterLibFunc(&ndiRecvDestroy, ndiHandle, "NDIlib_recv_destroy")
	purego.RegisterLibFunc(&ndiRecvConnect, ndiHandle, "NDIlib_recv_connect")
	purego.RegisterLibFunc(&ndiRecvCaptureV3, ndiHandle, "NDIlib_recv_capture_v3")
	purego.RegisterLibFunc(&ndiRecvFreeVideoV2, ndiHandle, "NDIlib_recv_free_video_v2")
	purego.RegisterLibFunc(&ndiRecvFreeAudioV3, ndiHandle, "NDIlib_recv_free_audio_v3")
	purego.RegisterLibFunc(&ndiRecvFreeMetadata, ndiHandle, "NDIlib_recv_free_metadata")

	// Sender
	purego.RegisterLibFunc(&ndiSendCreate, ndiHandle, "NDIlib_send_create")
	purego.RegisterLibFunc(&ndiSendDestroy, ndiHandle, "NDIlib_send_destroy")
	purego.RegisterLibFunc(&ndiSendSendVideoV2, ndiHandle, "NDIlib_send_send_video_v2")
	purego.RegisterLibFunc(&ndiSendSendAudioV3, ndiHandle, "NDIlib_send_send_audio_v3")
}
