package language

import "testing"

func Test_Detect(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"src/main.cpp", "C++"},
		{"src/impl.cc", "C++"},
		{"include/api.hpp", "C++"},
		{"include/legacy.h", "C++"},
		{"src/compat.c", "C"},
		{"kernel/fft.cu", "CUDA"},
		{"CMakeLists.txt", "CMake"},
		{"cmake/modules/CMakeLists.txt", "CMake"},
		{"meson.build", "Meson"},
		{"Makefile", "Makefile"},
		{"docs/intro.md", "Markdown"},
		{"api.proto", "Protobuf"},
		{".cppdocs.toml", "TOML"},
		{"mystery.xyz", "Unknown"},
		{"LICENSE", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Detect(tt.path); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func Test_IsSource(t *testing.T) {
	if !IsSource("C++") || !IsSource("C") {
		t.Error("C and C++ are source languages")
	}
	if IsSource("Markdown") || IsSource("CMake") || IsSource("Unknown") {
		t.Error("pages and build files are not source languages")
	}
}

func Test_IsBinaryContent(t *testing.T) {
	if IsBinaryContent([]byte("int main() { return 0; }\n")) {
		t.Error("plain source misdetected as binary")
	}
	if !IsBinaryContent([]byte{0x7f, 'E', 'L', 'F', 0x00, 0x01}) {
		t.Error("ELF header not detected as binary")
	}
	if IsBinaryContent(nil) {
		t.Error("empty content is not binary")
	}
}
