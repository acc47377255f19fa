package extractor

// vietnamMarketRecords is the curated Vietnam IT job-market question
// collection. Initialized once at startup and never mutated.
var vietnamMarketRecords = []datasetRecord{
	// FrontEnd
	{
		Title: "Phân biệt `var`, `let` và `const` trong JavaScript?",
		Content: "Câu hỏi phỏng vấn vị trí Frontend Developer (Fresher/Junior).\n\n" +
			"Hãy giải thích sự khác nhau giữa `var`, `let` và `const` về phạm vi (scope), hoisting và khả năng gán lại giá trị. Khi nào nên dùng cái nào?",
		Role:  "FrontEnd",
		Level: "Fresher",
		Tags:  []string{"JavaScript", "Frontend Basic"},
		Hint:  "Tập trung vào Scope (Function vs Block), Hoisting và Reassignment.",
		CorrectAnswer: "1. Scope: `var` có function scope, `let` và `const` có block scope.\n" +
			"2. Hoisting: `var` được khởi tạo với `undefined`; `let`/`const` nằm trong Temporal Dead Zone cho đến khi khai báo.\n" +
			"3. Reassignment: `var` và `let` gán lại được, `const` thì không.\n" +
			"4. Ưu tiên `const`, cần gán lại thì dùng `let`, tránh `var`.",
	},
	{
		Title: "React Lifecycle Methods (Class vs Hooks)",
		Content: "Câu hỏi phỏng vấn ReactJS.\n\n" +
			"So sánh Lifecycle trong Class Component (componentDidMount, componentDidUpdate, componentWillUnmount) với `useEffect` trong Functional Component.",
		Role:  "FrontEnd",
		Level: "Junior",
		Tags:  []string{"React", "JavaScript"},
		Hint:  "Liên hệ `useEffect` với dependency array rỗng, có dependency, và cleanup function.",
		CorrectAnswer: "componentDidMount tương đương `useEffect(..., [])`; componentDidUpdate tương đương `useEffect(..., [prop])`; " +
			"componentWillUnmount tương đương cleanup function return trong `useEffect`. `useEffect` gom logic liên quan lại với nhau thay vì tách theo lifecycle.",
	},
	{
		Title: "Vue.js Computed vs Watchers",
		Content: "Câu hỏi phỏng vấn Vue.js.\n\n" +
			"Khi nào nên sử dụng Computed Properties? Khi nào nên sử dụng Watchers? Sự khác biệt về caching của chúng.",
		Role:  "FrontEnd",
		Level: "Junior",
		Tags:  []string{"Vue", "JavaScript"},
		Hint:  "Computed dựa trên dependency và có caching. Watcher dùng cho side-effects.",
		CorrectAnswer: "Computed được cache theo reactive dependency, chỉ tính lại khi dependency đổi, dùng để biến đổi dữ liệu hiển thị. " +
			"Watcher không cache, chạy mỗi khi data đổi, dùng cho side-effects như gọi API hoặc thao tác DOM.",
	},
	{
		Title: "Angular Dependency Injection",
		Content: "Câu hỏi phỏng vấn Angular.\n\n" +
			"Giải thích cơ chế Dependency Injection trong Angular. Sự khác biệt giữa `providedIn: 'root'` và providers trong module/component.",
		Role:  "FrontEnd",
		Level: "Mid",
		Tags:  []string{"Angular", "TypeScript"},
		Hint:  "Singleton service vs multiple instances. Tree shaking.",
		CorrectAnswer: "DI là pattern nơi class nhận dependency từ bên ngoài. `providedIn: 'root'` tạo singleton toàn ứng dụng và hỗ trợ tree shaking; " +
			"providers trong module/component tạo instance riêng cho phạm vi đó.",
	},
	{
		Title: "Frontend Performance Optimization",
		Content: "Câu hỏi tối ưu hiệu năng Frontend.\n\n" +
			"Các kỹ thuật tối ưu performance cho web app: Lazy Loading, Code Splitting, Caching, Image Optimization. Critical Rendering Path là gì?",
		Role:  "FrontEnd",
		Level: "Senior",
		Tags:  []string{"Performance", "Frontend"},
		Hint:  "Giảm size bundle, giảm request, tối ưu render blocking.",
		CorrectAnswer: "Lazy Loading chỉ tải resource khi cần; Code Splitting chia nhỏ bundle theo route. " +
			"Critical Rendering Path là chuỗi bước trình duyệt render pixel đầu tiên (HTML → DOM → CSSOM → Render Tree → Layout → Paint); tối ưu bằng inline CSS quan trọng và defer JS.",
	},

	// BackEnd
	{
		Title: "Sự khác biệt giữa TCP và UDP?",
		Content: "Câu hỏi mạng máy tính cơ bản cho Backend Developer.\n\n" +
			"Giải thích sự khác biệt chính giữa giao thức TCP và UDP. Khi nào nên dùng TCP, khi nào dùng UDP? Ví dụ ứng dụng thực tế.",
		Role:  "BackEnd",
		Level: "Junior",
		Tags:  []string{"Network", "General"},
		Hint:  "Độ tin cậy vs tốc độ. Connection-oriented vs connectionless.",
		CorrectAnswer: "TCP hướng kết nối, đảm bảo độ tin cậy và thứ tự, chậm hơn — dùng cho Web, Email, FTP. " +
			"UDP không kết nối, có thể mất gói, nhanh hơn — dùng cho Streaming, Gaming, VoIP, DNS.",
	},
	{
		Title: "Giải thích về Database Indexing",
		Content: "Câu hỏi tối ưu hóa cơ sở dữ liệu.\n\n" +
			"Index là gì? Tại sao Index giúp tăng tốc độ truy vấn? Nhược điểm của việc đánh quá nhiều Index là gì? B-Tree Index hoạt động như thế nào?",
		Role:  "BackEnd",
		Level: "Mid",
		Tags:  []string{"Database", "SQL"},
		Hint:  "Giống như mục lục sách. Trade-off giữa read speed và write speed.",
		CorrectAnswer: "Index (thường là B-Tree) giúp tìm kiếm mà không quét toàn bộ bảng, tăng tốc SELECT nhưng giảm tốc INSERT/UPDATE/DELETE và tốn dung lượng. " +
			"B-Tree là cây cân bằng với độ phức tạp O(log n).",
	},
	{
		Title: "Golang Goroutines vs Threads",
		Content: "Câu hỏi chuyên sâu về Golang.\n\n" +
			"Goroutine khác gì so với OS Thread? Tại sao Goroutine lại nhẹ hơn? Cơ chế M:N scheduling trong Go Runtime.",
		Role:  "BackEnd",
		Level: "Mid",
		Tags:  []string{"Golang"},
		Hint:  "Stack size, scheduling (OS vs runtime).",
		CorrectAnswer: "Goroutine khởi đầu ~2KB stack và grow/shrink động, OS thread tốn 1-2MB. " +
			"Go runtime schedule goroutine ở user space nên context switch rẻ; M:N scheduling map M goroutine lên N OS thread.",
	},
	{
		Title: "Python Global Interpreter Lock (GIL)",
		Content: "Câu hỏi phỏng vấn Python.\n\n" +
			"GIL là gì và nó ảnh hưởng thế nào đến multi-threading trong Python? Làm sao để vượt qua giới hạn của GIL để tận dụng đa nhân CPU?",
		Role:  "BackEnd",
		Level: "Mid",
		Tags:  []string{"Python"},
		Hint:  "Mutex lock. CPU-bound vs I/O-bound. Multiprocessing.",
		CorrectAnswer: "GIL là mutex ngăn nhiều thread chạy Python bytecode cùng lúc trong một process, nên threading chỉ lợi cho I/O-bound. " +
			"Với CPU-bound dùng multiprocessing: mỗi process có GIL riêng.",
	},
	{
		Title: "Java Memory Management & Garbage Collection",
		Content: "Câu hỏi phỏng vấn Java Backend.\n\n" +
			"Giải thích cơ chế quản lý bộ nhớ trong Java (Heap, Stack). Garbage Collection hoạt động như thế nào? Các thuật toán GC phổ biến (G1, CMS).",
		Role:  "BackEnd",
		Level: "Senior",
		Tags:  []string{"Java"},
		Hint:  "Stack lưu local vars, Heap lưu objects. Mark and sweep.",
		CorrectAnswer: "Stack lưu biến cục bộ và method frame, giải phóng theo LIFO; Heap lưu object và do GC quản lý. " +
			"GC tìm và xóa object không còn tham chiếu; các thuật toán phổ biến: Mark-and-Sweep, Generational, G1 chia heap thành region để giảm pause time.",
	},
	{
		Title: "Microservices Design Patterns",
		Content: "Câu hỏi System Design cho vị trí Senior/Architect.\n\n" +
			"Các pattern phổ biến: API Gateway, Circuit Breaker, Saga Pattern (cho distributed transactions). Khi nào nên chuyển từ Monolith sang Microservices?",
		Role:  "BackEnd",
		Level: "Senior",
		Tags:  []string{"System Design", "Architecture"},
		Hint:  "Scale độc lập, fault isolation, complexity management.",
		CorrectAnswer: "API Gateway là cổng vào duy nhất; Circuit Breaker ngắt kết nối khi service lỗi để tránh cascade failure; " +
			"Saga quản lý transaction phân tán bằng chuỗi local transaction có bù trừ. Chuyển đổi khi monolith khó maintain, deploy chậm, cần scale từng phần.",
	},
	{
		Title: "Node.js Event Loop",
		Content: "Câu hỏi phỏng vấn Node.js.\n\n" +
			"Giải thích cơ chế Event Loop trong Node.js. Các giai đoạn của Event Loop. Microtasks (Promise) vs Macrotasks (setTimeout).",
		Role:  "BackEnd",
		Level: "Mid",
		Tags:  []string{"Node.js", "JavaScript"},
		Hint:  "Single threaded nhưng non-blocking I/O.",
		CorrectAnswer: "Event Loop cho phép non-blocking I/O bằng cách offload cho kernel. " +
			"Phases: Timers → Pending Callbacks → Poll → Check → Close. Microtasks (Promise.then, process.nextTick) ưu tiên cao hơn, chạy trước khi chuyển phase.",
	},
	{
		Title: "Redis Use Cases",
		Content: "Câu hỏi về Caching/NoSQL.\n\n" +
			"Redis là gì? Các kiểu dữ liệu chính (String, List, Set, Hash, Sorted Set). Khi nào nên dùng Redis làm Cache? Khi nào dùng làm Message Broker?",
		Role:  "BackEnd",
		Level: "Mid",
		Tags:  []string{"Redis", "NoSQL"},
		Hint:  "In-memory. Key-value. Pub/Sub.",
		CorrectAnswer: "Redis là in-memory data structure store. String cho cache, List cho queue, Set cho unique, Hash cho object, Sorted Set cho leaderboard. " +
			"Cache cho dữ liệu ít đổi hoặc tính toán tốn kém; Pub/Sub hoặc Stream cho messaging nhẹ.",
	},

	// DevOps
	{
		Title: "Docker vs Virtual Machine",
		Content: "Câu hỏi cơ bản về Containerization.\n\n" +
			"So sánh Docker Container và Virtual Machine (VM). Lợi ích của việc sử dụng Docker trong quy trình CI/CD.",
		Role:  "DevOps",
		Level: "Junior",
		Tags:  []string{"Docker", "DevOps"},
		Hint:  "OS kernel sharing vs full guest OS.",
		CorrectAnswer: "Container chia sẻ kernel của host nên nhẹ và khởi động nhanh; VM có guest OS riêng, nặng nhưng cách ly tốt hơn. " +
			"Trong CI/CD Docker cho môi trường nhất quán, build nhanh, dễ scale.",
	},
	{
		Title: "Kubernetes Pod Lifecycle",
		Content: "Câu hỏi về Kubernetes.\n\n" +
			"Mô tả vòng đời của một Pod trong Kubernetes. Các trạng thái (Pending, Running, Succeeded, Failed, Unknown). Làm thế nào để debug khi Pod bị CrashLoopBackOff?",
		Role:  "DevOps",
		Level: "Mid",
		Tags:  []string{"Kubernetes", "DevOps"},
		Hint:  "Pending → ContainerCreating → Running. kubectl describe/logs.",
		CorrectAnswer: "Pending (schedule/pull image) → Running → Succeeded/Failed. " +
			"CrashLoopBackOff là container start rồi crash liên tục; debug bằng `kubectl describe pod` xem events và `kubectl logs` xem lỗi ứng dụng.",
	},
	{
		Title: "CI/CD Pipeline Best Practices",
		Content: "Câu hỏi về quy trình CI/CD.\n\n" +
			"Thiết kế một pipeline CI/CD an toàn và hiệu quả. Khái niệm Blue-Green Deployment và Canary Deployment.",
		Role:  "DevOps",
		Level: "Senior",
		Tags:  []string{"CI/CD", "DevOps"},
		Hint:  "Fail fast. Zero downtime deployment.",
		CorrectAnswer: "Build once deploy anywhere, test tự động, security scan, staging giống prod. " +
			"Blue-Green: hai môi trường song song, switch traffic khi test xong. Canary: deploy cho một lượng nhỏ user trước, monitor rồi roll out.",
	},
	{
		Title: "Infrastructure as Code (Terraform)",
		Content: "Câu hỏi về IaC.\n\n" +
			"Tại sao nên dùng Terraform (hoặc IaC nói chung) thay vì cấu hình thủ công? Giải thích về Terraform State và cách quản lý State trong team (Remote State).",
		Role:  "DevOps",
		Level: "Mid",
		Tags:  []string{"Terraform", "DevOps"},
		Hint:  "Consistency, version control. State file lưu mapping resource.",
		CorrectAnswer: "IaC nhất quán, có version control, tái sử dụng, tránh human error. " +
			"Terraform State lưu trạng thái hạ tầng để plan thay đổi; Remote State (S3 + DynamoDB) chia sẻ state trong team kèm locking.",
	},

	// Data Engineer
	{
		Title: "ETL vs ELT",
		Content: "Câu hỏi cơ bản về Data Engineering.\n\n" +
			"Phân biệt quy trình ETL (Extract, Transform, Load) và ELT (Extract, Load, Transform). Khi nào nên dùng ELT?",
		Role:  "Data Engineer",
		Level: "Junior",
		Tags:  []string{"Data Engineering", "ETL"},
		Hint:  "Thứ tự xử lý. Sức mạnh của modern data warehouse.",
		CorrectAnswer: "ETL transform trên server riêng trước khi load vào warehouse. ELT load dữ liệu thô rồi transform bằng sức mạnh của warehouse (BigQuery, Snowflake). " +
			"Dùng ELT khi dữ liệu lớn và dùng cloud warehouse hiện đại.",
	},
	{
		Title: "Spark RDD vs DataFrame vs Dataset",
		Content: "Câu hỏi về Apache Spark.\n\n" +
			"So sánh RDD, DataFrame và Dataset trong Spark. Tại sao DataFrame/Dataset thường nhanh hơn RDD?",
		Role:  "Data Engineer",
		Level: "Mid",
		Tags:  []string{"Spark", "Big Data"},
		Hint:  "Low-level vs high-level API. Catalyst Optimizer.",
		CorrectAnswer: "RDD là low-level API không tối ưu tự động; DataFrame có schema và được Catalyst Optimizer tối ưu; Dataset type-safe như RDD nhưng tối ưu như DataFrame. " +
			"DataFrame/Dataset nhanh hơn vì Spark hiểu cấu trúc dữ liệu và tối ưu query plan.",
	},
	{
		Title: "Data Warehouse vs Data Lake",
		Content: "Câu hỏi kiến trúc dữ liệu.\n\n" +
			"Sự khác biệt giữa Data Warehouse và Data Lake. Mô hình Data Lakehouse là gì?",
		Role:  "Data Engineer",
		Level: "Senior",
		Tags:  []string{"Data Architecture"},
		Hint:  "Structured vs unstructured. Schema-on-write vs schema-on-read.",
		CorrectAnswer: "Warehouse lưu dữ liệu có cấu trúc đã xử lý, schema-on-write, dùng cho BI. Lake lưu mọi loại dữ liệu thô, schema-on-read, rẻ, dùng cho ML. " +
			"Lakehouse kết hợp: lưu trữ rẻ của lake cộng ACID/schema của warehouse.",
	},
	{
		Title: "SQL Window Functions",
		Content: "Câu hỏi SQL nâng cao.\n\n" +
			"Window Functions là gì? Khác gì với GROUP BY? Ví dụ về `ROW_NUMBER()`, `RANK()`, `DENSE_RANK()`.",
		Role:  "Data Engineer",
		Level: "Mid",
		Tags:  []string{"SQL", "Data Engineering"},
		Hint:  "Tính toán trên tập dòng liên quan mà không gom nhóm như GROUP BY.",
		CorrectAnswer: "Window function tính trên một cửa sổ dòng liên quan mà không giảm số dòng trả về. " +
			"ROW_NUMBER đánh số liên tục (1,2,3,4); RANK nhảy cóc khi trùng (1,2,2,4); DENSE_RANK không nhảy cóc (1,2,2,3).",
	},
	{
		Title: "Apache Kafka Basics",
		Content: "Câu hỏi về hệ thống message streaming.\n\n" +
			"Apache Kafka là gì? Các thành phần chính: Producer, Consumer, Broker, Topic, Partition, Offset. Tại sao Kafka lại có throughput cao?",
		Role:  "Data Engineer",
		Level: "Mid",
		Tags:  []string{"Kafka", "Big Data"},
		Hint:  "Distributed event streaming. Sequential I/O. Zero copy.",
		CorrectAnswer: "Kafka là nền tảng event streaming phân tán: Producer gửi, Consumer nhận, Broker là server, Topic chia thành Partition để scale, Offset là vị trí tin. " +
			"Throughput cao nhờ sequential I/O và zero copy.",
	},
	{
		Title: "Airflow & Workflow Orchestration",
		Content: "Câu hỏi về công cụ điều phối workflow.\n\n" +
			"Apache Airflow là gì? Khái niệm DAG (Directed Acyclic Graph). Làm thế nào để xử lý backfill dữ liệu trong Airflow?",
		Role:  "Data Engineer",
		Level: "Senior",
		Tags:  []string{"Airflow", "Data Engineering"},
		Hint:  "Python-based. Scheduler. Operators.",
		CorrectAnswer: "Airflow lập lịch và giám sát workflow; DAG là đồ thị có hướng không chu trình biểu diễn luồng công việc. " +
			"Backfill chạy lại task trong quá khứ bằng cách chỉ định khoảng ngày cũ.",
	},
}
